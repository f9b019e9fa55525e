package recurring

import (
	"context"
	"log/slog"
	"time"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense"
)

// ExpenseCreator inserts the expenses the processor produces
type ExpenseCreator interface {
	CreateExpense(ctx context.Context, req *expense.CreateExpenseRequest) (*expense.ExpenseWithSplits, error)
}

// Processor turns due recurring templates into real expenses. It is invoked
// from a ticker; a failing template is logged and skipped so one bad
// template cannot starve the rest.
type Processor struct {
	repo     *Repository
	expenses ExpenseCreator
}

// NewProcessor creates a new recurring expense processor
func NewProcessor(repo *Repository, expenses ExpenseCreator) *Processor {
	return &Processor{
		repo:     repo,
		expenses: expenses,
	}
}

// ProcessDue inserts an expense for every active template due at now and
// advances each template's next run. Returns how many expenses were created.
func (p *Processor) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	due, err := p.repo.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, template := range due {
		if _, err := p.expenses.CreateExpense(ctx, buildRequest(template)); err != nil {
			slog.ErrorContext(ctx, "failed to create expense from recurring template",
				"recurring_id", template.ID,
				"description", template.Description,
				"error", err)
			continue
		}

		next := NextRun(template.Frequency, now)
		if err := p.repo.UpdateNextRun(ctx, template.ID, next); err != nil {
			slog.ErrorContext(ctx, "failed to advance recurring template",
				"recurring_id", template.ID,
				"error", err)
			continue
		}

		created++
		slog.InfoContext(ctx, "created expense from recurring template",
			"recurring_id", template.ID,
			"description", template.Description,
			"amount", template.Amount,
			"next_run_at", next.Format(time.RFC3339))
	}

	return created, nil
}

// buildRequest maps a template to an expense request with an equal split
// among its participants
func buildRequest(template *RecurringExpense) *expense.CreateExpenseRequest {
	splits := make([]*expense.SplitInput, len(template.Participants))
	for i, name := range template.Participants {
		splits[i] = &expense.SplitInput{Name: name, SplitType: "EQUAL"}
	}

	return &expense.CreateExpenseRequest{
		Amount:      template.Amount,
		Description: template.Description,
		Category:    string(template.Category),
		PaidBy:      template.PaidBy,
		Splits:      splits,
	}
}
