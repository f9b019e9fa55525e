package report

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidDateRange is returned when from does not precede to
var ErrInvalidDateRange = errors.New("invalid date range: from must precede to")

// Service handles reporting business logic
type Service struct {
	repo *Repository
}

// NewService creates a new report service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// CategoryReport returns per-category spend for an optional date window
func (s *Service) CategoryReport(ctx context.Context, from, to *time.Time) ([]*CategoryTotal, error) {
	if from != nil && to != nil && !from.Before(*to) {
		return nil, ErrInvalidDateRange
	}

	totals, err := s.repo.TotalsByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		totals = []*CategoryTotal{}
	}
	return totals, nil
}

// MonthlyReport returns per-month spend for a year; a zero year means the
// current year
func (s *Service) MonthlyReport(ctx context.Context, year int) ([]*MonthlyTotal, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	totals, err := s.repo.TotalsByMonth(ctx, year)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		totals = []*MonthlyTotal{}
	}
	return totals, nil
}
