package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
)

// SplitRecord is a resolved split ready for insertion: the person name has
// already been turned into an id by the service layer
type SplitRecord struct {
	PersonID  int64
	SplitType split.SplitType
	Value     float64
}

// Repository handles expense and split data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateExpense inserts an expense and its splits in one transaction
func (r *Repository) CreateExpense(ctx context.Context, payerID int64, amount float64, description string, category Category, records []SplitRecord) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (amount, description, category, paid_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, amount, description, category, paid_by, created_at
	`

	expense := &Expense{}
	err = tx.QueryRowContext(ctx, query, amount, description, category, payerID).Scan(
		&expense.ID,
		&expense.Amount,
		&expense.Description,
		&expense.Category,
		&expense.PaidBy,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := insertSplits(ctx, tx, expense.ID, records); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	return expense, nil
}

// ReplaceExpense updates an expense's fields and replaces its whole split set
// in one transaction, so no reader ever observes an expense with zero splits.
// Returns nil when the expense does not exist.
func (r *Repository) ReplaceExpense(ctx context.Context, id, payerID int64, amount float64, description string, category Category, records []SplitRecord) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE expenses
		SET amount = $2, description = $3, category = $4, paid_by = $5
		WHERE id = $1
		RETURNING id, amount, description, category, paid_by, created_at
	`

	expense := &Expense{}
	err = tx.QueryRowContext(ctx, query, id, amount, description, category, payerID).Scan(
		&expense.ID,
		&expense.Amount,
		&expense.Description,
		&expense.Category,
		&expense.PaidBy,
		&expense.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_splits WHERE expense_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete old splits: %w", err)
	}

	if err := insertSplits(ctx, tx, id, records); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense update: %w", err)
	}

	return expense, nil
}

func insertSplits(ctx context.Context, tx *sql.Tx, expenseID int64, records []SplitRecord) error {
	query := `
		INSERT INTO expense_splits (expense_id, person_id, split_type, value)
		VALUES ($1, $2, $3, $4)
	`
	for _, record := range records {
		if _, err := tx.ExecContext(ctx, query, expenseID, record.PersonID, record.SplitType, record.Value); err != nil {
			return fmt.Errorf("failed to create split: %w", err)
		}
	}
	return nil
}

// GetExpenseByID retrieves an expense by its ID
func (r *Repository) GetExpenseByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.amount, e.description, e.category, e.paid_by, e.created_at, p.name
		FROM expenses e
		JOIN people p ON e.paid_by = p.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.Amount,
		&expense.Description,
		&expense.Category,
		&expense.PaidBy,
		&expense.CreatedAt,
		&expense.PaidByName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetSplitsByExpenseID retrieves all splits for an expense
func (r *Repository) GetSplitsByExpenseID(ctx context.Context, expenseID int64) ([]*Split, error) {
	query := `
		SELECT s.id, s.expense_id, s.person_id, s.split_type, s.value, p.name
		FROM expense_splits s
		JOIN people p ON s.person_id = p.id
		WHERE s.expense_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []*Split
	for rows.Next() {
		s := &Split{}
		if err := rows.Scan(
			&s.ID,
			&s.ExpenseID,
			&s.PersonID,
			&s.SplitType,
			&s.Value,
			&s.PersonName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, s)
	}

	return splits, nil
}

// ListExpenses retrieves all expenses, newest first, with pagination
func (r *Repository) ListExpenses(ctx context.Context, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.amount, e.description, e.category, e.paid_by, e.created_at, p.name
		FROM expenses e
		JOIN people p ON e.paid_by = p.id
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.Amount,
			&expense.Description,
			&expense.Category,
			&expense.PaidBy,
			&expense.CreatedAt,
			&expense.PaidByName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, total, nil
}

// DeleteExpense deletes an expense; its splits go with it via ON DELETE CASCADE
func (r *Repository) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}
