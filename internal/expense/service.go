package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/person"
)

// Common errors
var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidCategory     = errors.New("unknown category")
	ErrPayerRequired       = errors.New("paid_by is required")
	ErrNoSplits            = errors.New("at least one split is required")
	ErrSplitterRequired    = errors.New("every split needs a person name")
)

// Service handles expense business logic
type Service struct {
	repo         *Repository
	people       *person.Repository
	splitFactory *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, people *person.Repository, splitFactory *split.Factory) *Service {
	return &Service{
		repo:         repo,
		people:       people,
		splitFactory: splitFactory,
	}
}

// CreateExpense validates the request, resolves every name to a person
// (creating people on first reference) and stores the expense with its
// splits atomically
func (s *Service) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*ExpenseWithSplits, error) {
	if err := validateExpenseInput(s.splitFactory, req.Amount, req.Description, req.Category, req.PaidBy, req.Splits); err != nil {
		return nil, err
	}

	payer, records, err := s.resolveParticipants(ctx, req.PaidBy, req.Splits)
	if err != nil {
		return nil, err
	}

	expense, err := s.repo.CreateExpense(ctx, payer.ID, req.Amount, strings.TrimSpace(req.Description), Category(req.Category), records)
	if err != nil {
		return nil, err
	}

	return s.withSplits(ctx, expense)
}

// UpdateExpense replaces the expense wholesale: payer, amount, description,
// category and the entire split set
func (s *Service) UpdateExpense(ctx context.Context, id int64, req *UpdateExpenseRequest) (*ExpenseWithSplits, error) {
	if err := validateExpenseInput(s.splitFactory, req.Amount, req.Description, req.Category, req.PaidBy, req.Splits); err != nil {
		return nil, err
	}

	payer, records, err := s.resolveParticipants(ctx, req.PaidBy, req.Splits)
	if err != nil {
		return nil, err
	}

	expense, err := s.repo.ReplaceExpense(ctx, id, payer.ID, req.Amount, strings.TrimSpace(req.Description), Category(req.Category), records)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	return s.withSplits(ctx, expense)
}

// GetExpenseByID retrieves an expense with its splits
func (s *Service) GetExpenseByID(ctx context.Context, id int64) (*ExpenseWithSplits, error) {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	return s.withSplits(ctx, expense)
}

// ListExpenses retrieves expenses, newest first
func (s *Service) ListExpenses(ctx context.Context, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListExpenses(ctx, perPage, offset)
}

// DeleteExpense removes an expense and, by cascade, its splits
func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteExpense(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

// resolveParticipants turns the payer and splitter names into person ids,
// creating people on first reference
func (s *Service) resolveParticipants(ctx context.Context, paidBy string, splits []*SplitInput) (*person.Person, []SplitRecord, error) {
	payer, err := s.people.GetOrCreateByName(ctx, strings.TrimSpace(paidBy))
	if err != nil {
		return nil, nil, err
	}

	records := make([]SplitRecord, len(splits))
	for i, input := range splits {
		splitter, err := s.people.GetOrCreateByName(ctx, strings.TrimSpace(input.Name))
		if err != nil {
			return nil, nil, err
		}
		records[i] = SplitRecord{
			PersonID:  splitter.ID,
			SplitType: split.SplitType(input.SplitType),
			Value:     input.Value,
		}
	}

	return payer, records, nil
}

func (s *Service) withSplits(ctx context.Context, expense *Expense) (*ExpenseWithSplits, error) {
	splits, err := s.repo.GetSplitsByExpenseID(ctx, expense.ID)
	if err != nil {
		return nil, err
	}
	return &ExpenseWithSplits{Expense: expense, Splits: splits}, nil
}

// validateExpenseInput checks everything the write path can know about a
// single expense. Aggregate split consistency is deliberately left to the
// read-side checker: splits are declared independently per person and the
// bound is only enforceable over the full set.
func validateExpenseInput(factory *split.Factory, amount float64, description, category, paidBy string, splits []*SplitInput) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	if !IsValidCategory(category) {
		return fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	if strings.TrimSpace(paidBy) == "" {
		return ErrPayerRequired
	}
	if len(splits) == 0 {
		return ErrNoSplits
	}

	for _, input := range splits {
		if strings.TrimSpace(input.Name) == "" {
			return ErrSplitterRequired
		}
		strategy, err := factory.CreateFromString(input.SplitType)
		if err != nil {
			return err
		}
		if err := strategy.ValidateValue(input.Value); err != nil {
			return fmt.Errorf("split for %s: %w", input.Name, err)
		}
	}

	return nil
}
