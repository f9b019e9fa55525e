package recurring

import (
	"time"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense"
)

// Frequency defines how often a recurring expense fires
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// IsValidFrequency reports whether f names a known frequency
func IsValidFrequency(f string) bool {
	switch Frequency(f) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// RecurringExpense is a template that the processor turns into a real
// expense each time it comes due. The cost is split equally among the
// participants.
type RecurringExpense struct {
	ID           int64            `json:"id"`
	Description  string           `json:"description"`
	Amount       float64          `json:"amount"`
	Category     expense.Category `json:"category"`
	PaidBy       string           `json:"paid_by"`
	Participants []string         `json:"participants"`
	Frequency    Frequency        `json:"frequency"`
	NextRunAt    time.Time        `json:"next_run_at"`
	Active       bool             `json:"active"`
	CreatedAt    time.Time        `json:"created_at"`
}

// NextRun returns the run time that follows from, for the given frequency
func NextRun(frequency Frequency, from time.Time) time.Time {
	switch frequency {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	default:
		return from.AddDate(0, 1, 0)
	}
}
