package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository runs the reporting aggregation queries
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new report repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// TotalsByCategory sums expenses per category, optionally limited to a date
// window. A nil bound leaves that side of the window open.
func (r *Repository) TotalsByCategory(ctx context.Context, from, to *time.Time) ([]*CategoryTotal, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at < $2)
		GROUP BY category
		ORDER BY SUM(amount) DESC, category
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by category: %w", err)
	}
	defer rows.Close()

	var totals []*CategoryTotal
	for rows.Next() {
		t := &CategoryTotal{}
		if err := rows.Scan(&t.Category, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// TotalsByMonth sums expenses per calendar month for one year
func (r *Repository) TotalsByMonth(ctx context.Context, year int) ([]*MonthlyTotal, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM'), COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		WHERE EXTRACT(YEAR FROM created_at) = $1
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by month: %w", err)
	}
	defer rows.Close()

	var totals []*MonthlyTotal
	for rows.Next() {
		t := &MonthlyTotal{}
		if err := rows.Scan(&t.Month, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}
