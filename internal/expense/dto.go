package expense

// SplitInput declares one person's share when creating or updating an expense
type SplitInput struct {
	Name      string  `json:"name" validate:"required"`
	SplitType string  `json:"split_type" validate:"required,oneof=EQUAL PERCENTAGE EXACT"`
	Value     float64 `json:"value"`
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	Amount      float64       `json:"amount" validate:"required,gt=0"`
	Description string        `json:"description" validate:"required,min=1,max=255"`
	Category    string        `json:"category" validate:"required"`
	PaidBy      string        `json:"paid_by" validate:"required"`
	Splits      []*SplitInput `json:"splits" validate:"required,min=1"`
}

// UpdateExpenseRequest replaces an expense wholesale: payer, amount,
// description, category and the entire split set
type UpdateExpenseRequest struct {
	Amount      float64       `json:"amount" validate:"required,gt=0"`
	Description string        `json:"description" validate:"required,min=1,max=255"`
	Category    string        `json:"category" validate:"required"`
	PaidBy      string        `json:"paid_by" validate:"required"`
	Splits      []*SplitInput `json:"splits" validate:"required,min=1"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          int64            `json:"id"`
	Amount      float64          `json:"amount"`
	Description string           `json:"description"`
	Category    Category         `json:"category"`
	PaidBy      int64            `json:"paid_by"`
	PaidByName  string           `json:"paid_by_name,omitempty"`
	CreatedAt   string           `json:"created_at"`
	Splits      []*SplitResponse `json:"splits,omitempty"`
}

// SplitResponse represents the response for a split
type SplitResponse struct {
	ID         int64   `json:"id"`
	ExpenseID  int64   `json:"expense_id"`
	PersonID   int64   `json:"person_id"`
	PersonName string  `json:"person_name,omitempty"`
	SplitType  string  `json:"split_type"`
	Value      float64 `json:"value"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		PaidBy:      e.PaidBy,
		PaidByName:  e.PaidByName,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Split model to a SplitResponse DTO
func (s *Split) ToResponse() *SplitResponse {
	return &SplitResponse{
		ID:         s.ID,
		ExpenseID:  s.ExpenseID,
		PersonID:   s.PersonID,
		PersonName: s.PersonName,
		SplitType:  string(s.SplitType),
		Value:      s.Value,
	}
}
