package expense

import (
	"time"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
)

// Category classifies an expense
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryRent          Category = "Rent"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryGroceries     Category = "Groceries"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category
var Categories = []Category{
	CategoryFood,
	CategoryTravel,
	CategoryRent,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryGroceries,
	CategoryOther,
}

// IsValidCategory reports whether c names a known category
func IsValidCategory(c string) bool {
	for _, category := range Categories {
		if Category(c) == category {
			return true
		}
	}
	return false
}

// Expense represents an expense in the system
type Expense struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	PaidBy      int64     `json:"paid_by"`
	CreatedAt   time.Time `json:"created_at"`

	// Populated via JOIN
	PaidByName string `json:"paid_by_name,omitempty"`
}

// Split represents one person's declared share of an expense. Exactly one
// split per (expense, person) pair is expected by construction; splits live
// and die with their expense.
type Split struct {
	ID        int64           `json:"id"`
	ExpenseID int64           `json:"expense_id"`
	PersonID  int64           `json:"person_id"`
	SplitType split.SplitType `json:"split_type"`
	Value     float64         `json:"value"`

	// Populated via JOIN
	PersonName string `json:"person_name,omitempty"`
}

// ExpenseWithSplits combines an expense with its split set
type ExpenseWithSplits struct {
	Expense *Expense
	Splits  []*Split
}
