package recurring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense"
)

// Common errors
var (
	ErrTemplateNotFound    = errors.New("recurring expense not found")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidCategory     = errors.New("unknown category")
	ErrPayerRequired       = errors.New("paid_by is required")
	ErrNoParticipants      = errors.New("at least one participant is required")
	ErrInvalidFrequency    = errors.New("frequency must be DAILY, WEEKLY or MONTHLY")
	ErrInvalidStartDate    = errors.New("invalid start_date, expected YYYY-MM-DD")
)

// Service handles recurring expense business logic
type Service struct {
	repo *Repository
}

// NewService creates a new recurring expense service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new recurring expense template. The first
// run is the start date, or now when none is given.
func (s *Service) Create(ctx context.Context, req *CreateRecurringRequest) (*RecurringExpense, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if !expense.IsValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, req.Category)
	}
	if strings.TrimSpace(req.PaidBy) == "" {
		return nil, ErrPayerRequired
	}
	if !IsValidFrequency(req.Frequency) {
		return nil, ErrInvalidFrequency
	}

	participants := make([]string, 0, len(req.Participants))
	for _, name := range req.Participants {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			participants = append(participants, trimmed)
		}
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	nextRun := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, ErrInvalidStartDate
		}
		nextRun = parsed
	}

	return s.repo.Create(ctx, &RecurringExpense{
		Description:  strings.TrimSpace(req.Description),
		Amount:       req.Amount,
		Category:     expense.Category(req.Category),
		PaidBy:       strings.TrimSpace(req.PaidBy),
		Participants: participants,
		Frequency:    Frequency(req.Frequency),
		NextRunAt:    nextRun,
	})
}

// List retrieves all recurring expense templates
func (s *Service) List(ctx context.Context) ([]*RecurringExpense, error) {
	return s.repo.List(ctx)
}

// Delete removes a recurring expense template
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTemplateNotFound
	}
	return nil
}
