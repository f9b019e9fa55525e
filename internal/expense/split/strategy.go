package split

import (
	"errors"
	"fmt"
	"math"
)

// SplitType defines how an expense's cost is divided among its participants
type SplitType string

const (
	SplitTypeEqual      SplitType = "EQUAL"
	SplitTypePercentage SplitType = "PERCENTAGE"
	SplitTypeExact      SplitType = "EXACT"
)

// Tolerance is the epsilon used by the aggregate consistency checks and the
// settlement planner. Per-person figures are rounded to 2 decimals
// independently, so totals can drift by a cent.
const Tolerance = 0.01

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Share computes one participant's owed share of an expense.
	// The meaning of value depends on the strategy: ignored for EQUAL,
	// a percentage 0-100 for PERCENTAGE, an absolute amount for EXACT.
	Share(value, expenseAmount float64, participantCount int) float64

	// ValidateValue checks a single declared split value at write time
	ValidateValue(value float64) error

	// ValidateSet checks the aggregate consistency of an expense's full
	// set of split values against the expense amount
	ValidateSet(expenseID int64, expenseAmount float64, values []float64) error

	// Type returns the type identifier for this strategy
	Type() SplitType
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewSplitStrategyFactory creates a new factory instance
func NewSplitStrategyFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the type
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{}, nil
	case SplitTypePercentage:
		return &PercentageStrategy{}, nil
	case SplitTypeExact:
		return &ExactStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSplitType, splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests)
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	return f.Create(SplitType(splitType))
}

var (
	ErrUnknownSplitType     = errors.New("unknown split type")
	ErrNegativeAmount       = errors.New("amounts cannot be negative")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
)

// ConsistencyError reports an expense whose declared splits exceed their bound
// beyond tolerance. It names the offending expense, the computed sum and the
// limit so the caller can surface a useful client error.
type ConsistencyError struct {
	ExpenseID int64
	SplitType SplitType
	Sum       float64
	Limit     float64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("expense %d: %s splits sum to %.2f, exceeding the allowed %.2f",
		e.ExpenseID, e.SplitType, e.Sum, e.Limit)
}

// RoundToTwoDecimals rounds a float to 2 decimal places, half away from zero
func RoundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
