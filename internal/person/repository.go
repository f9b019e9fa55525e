package person

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles person data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new person repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreateByName resolves a name to a person, creating the row on first
// reference. Names are normalized upstream; the unique constraint makes the
// upsert race-safe.
func (r *Repository) GetOrCreateByName(ctx context.Context, name string) (*Person, error) {
	query := `
		INSERT INTO people (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, created_at
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&person.ID,
		&person.Name,
		&person.CreatedAt,
	)
	if err == sql.ErrNoRows {
		// the name already exists; fetch the existing row
		return r.GetByName(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// GetByID retrieves a person by their ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Person, error) {
	query := `
		SELECT id, name, created_at
		FROM people
		WHERE id = $1
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&person.ID,
		&person.Name,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

// GetByName retrieves a person by their unique name
func (r *Repository) GetByName(ctx context.Context, name string) (*Person, error) {
	query := `
		SELECT id, name, created_at
		FROM people
		WHERE name = $1
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&person.ID,
		&person.Name,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}

	return person, nil
}

// List retrieves all people with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Person, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM people`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count people: %w", err)
	}

	query := `
		SELECT id, name, created_at
		FROM people
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		person := &Person{}
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}

	return people, total, nil
}
