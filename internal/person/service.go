package person

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrNameRequired   = errors.New("person name is required")
)

// Service handles person business logic
type Service struct {
	repo *Repository
}

// NewService creates a new person service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create resolves a name to a person, creating one if needed. Creating an
// existing name returns the existing person (find-or-create semantics).
func (s *Service) Create(ctx context.Context, req *CreatePersonRequest) (*Person, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	return s.repo.GetOrCreateByName(ctx, name)
}

// GetByID retrieves a person by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// List retrieves all people with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Person, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}
