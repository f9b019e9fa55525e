package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
)

// Repository reads settlement snapshots from the database
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// BuildSnapshot reads all people, expenses and splits in one pass. Rows are
// ordered by id so the assembled snapshot, and everything computed from it,
// is reproducible.
func (r *Repository) BuildSnapshot(ctx context.Context) (*Snapshot, error) {
	people, err := r.listPeople(ctx)
	if err != nil {
		return nil, err
	}

	expenses, index, err := r.listExpenses(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.attachSplits(ctx, index); err != nil {
		return nil, err
	}

	return &Snapshot{People: people, Expenses: expenses}, nil
}

func (r *Repository) listPeople(ctx context.Context) ([]Person, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM people ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []Person
	for rows.Next() {
		var p Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *Repository) listExpenses(ctx context.Context) ([]ExpenseRow, map[int64]*ExpenseRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, amount, paid_by FROM expenses ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []ExpenseRow
	for rows.Next() {
		var e ExpenseRow
		if err := rows.Scan(&e.ID, &e.Amount, &e.PaidBy); err != nil {
			return nil, nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	index := make(map[int64]*ExpenseRow, len(expenses))
	for i := range expenses {
		index[expenses[i].ID] = &expenses[i]
	}
	return expenses, index, nil
}

func (r *Repository) attachSplits(ctx context.Context, index map[int64]*ExpenseRow) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT expense_id, person_id, split_type, value
		FROM expense_splits
		ORDER BY expense_id, id
	`)
	if err != nil {
		return fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			expenseID int64
			row       SplitRow
			splitType string
		)
		if err := rows.Scan(&expenseID, &row.PersonID, &splitType, &row.Value); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		row.SplitType = split.SplitType(splitType)

		if e, ok := index[expenseID]; ok {
			e.Splits = append(e.Splits, row)
		}
	}
	return rows.Err()
}
