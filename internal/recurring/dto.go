package recurring

// CreateRecurringRequest represents the request to create a recurring expense
type CreateRecurringRequest struct {
	Description  string   `json:"description" validate:"required,min=1,max=255"`
	Amount       float64  `json:"amount" validate:"required,gt=0"`
	Category     string   `json:"category" validate:"required"`
	PaidBy       string   `json:"paid_by" validate:"required"`
	Participants []string `json:"participants" validate:"required,min=1"`
	Frequency    string   `json:"frequency" validate:"required,oneof=DAILY WEEKLY MONTHLY"`
	StartDate    string   `json:"start_date,omitempty"` // YYYY-MM-DD, defaults to today
}

// RecurringResponse represents the response for a recurring expense
type RecurringResponse struct {
	ID           int64    `json:"id"`
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	Category     string   `json:"category"`
	PaidBy       string   `json:"paid_by"`
	Participants []string `json:"participants"`
	Frequency    string   `json:"frequency"`
	NextRunAt    string   `json:"next_run_at"`
	Active       bool     `json:"active"`
	CreatedAt    string   `json:"created_at"`
}

// ToResponse converts a RecurringExpense model to a RecurringResponse DTO
func (r *RecurringExpense) ToResponse() *RecurringResponse {
	return &RecurringResponse{
		ID:           r.ID,
		Description:  r.Description,
		Amount:       r.Amount,
		Category:     string(r.Category),
		PaidBy:       r.PaidBy,
		Participants: r.Participants,
		Frequency:    string(r.Frequency),
		NextRunAt:    r.NextRunAt.Format("2006-01-02T15:04:05Z"),
		Active:       r.Active,
		CreatedAt:    r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
