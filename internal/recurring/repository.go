package recurring

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Repository handles recurring expense persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new recurring expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const recurringColumns = `id, description, amount, category, paid_by, participants, frequency, next_run_at, active, created_at`

func scanRecurring(row interface{ Scan(...any) error }) (*RecurringExpense, error) {
	re := &RecurringExpense{}
	err := row.Scan(
		&re.ID,
		&re.Description,
		&re.Amount,
		&re.Category,
		&re.PaidBy,
		pq.Array(&re.Participants),
		&re.Frequency,
		&re.NextRunAt,
		&re.Active,
		&re.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// Create inserts a new recurring expense template
func (r *Repository) Create(ctx context.Context, re *RecurringExpense) (*RecurringExpense, error) {
	query := `
		INSERT INTO recurring_expenses (description, amount, category, paid_by, participants, frequency, next_run_at, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING ` + recurringColumns

	created, err := scanRecurring(r.db.QueryRowContext(ctx, query,
		re.Description,
		re.Amount,
		re.Category,
		re.PaidBy,
		pq.Array(re.Participants),
		re.Frequency,
		re.NextRunAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}

	return created, nil
}

// List retrieves all recurring expense templates
func (r *Repository) List(ctx context.Context) ([]*RecurringExpense, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_expenses ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	defer rows.Close()

	var templates []*RecurringExpense
	for rows.Next() {
		re, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring expense: %w", err)
		}
		templates = append(templates, re)
	}

	return templates, rows.Err()
}

// ListDue retrieves the active templates whose next run is at or before now
func (r *Repository) ListDue(ctx context.Context, now time.Time) ([]*RecurringExpense, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_expenses
		WHERE active AND next_run_at <= $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due recurring expenses: %w", err)
	}
	defer rows.Close()

	var due []*RecurringExpense
	for rows.Next() {
		re, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring expense: %w", err)
		}
		due = append(due, re)
	}

	return due, rows.Err()
}

// UpdateNextRun advances a template's next run time
func (r *Repository) UpdateNextRun(ctx context.Context, id int64, next time.Time) error {
	query := `UPDATE recurring_expenses SET next_run_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, next); err != nil {
		return fmt.Errorf("failed to update next run: %w", err)
	}
	return nil
}

// Delete removes a recurring expense template
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recurring_expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete recurring expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}
