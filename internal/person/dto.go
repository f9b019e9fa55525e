package person

// CreatePersonRequest represents the request body for creating a person
type CreatePersonRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// PersonResponse represents the response for a single person
type PersonResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a Person model to a PersonResponse DTO
func (p *Person) ToResponse() *PersonResponse {
	return &PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
