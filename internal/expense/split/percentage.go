package split

// =============================================================================
// PERCENTAGE SPLIT STRATEGY
// Each participant owes a stated percentage of the expense amount
// =============================================================================

// PercentageStrategy implements the Strategy interface for percentage-based splits
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() SplitType {
	return SplitTypePercentage
}

// Share computes value percent of the expense amount
func (s *PercentageStrategy) Share(value, expenseAmount float64, _ int) float64 {
	return (value / 100) * expenseAmount
}

// ValidateValue checks that a single percentage is within 0-100
func (s *PercentageStrategy) ValidateValue(value float64) error {
	if value < 0 || value > 100 {
		return ErrPercentageOutOfRange
	}
	return nil
}

// ValidateSet rejects a split set whose percentages sum past 100 beyond tolerance.
// Splits are entered independently per person, so nothing at write time keeps
// the set consistent; this check runs before any balance is trusted.
func (s *PercentageStrategy) ValidateSet(expenseID int64, _ float64, values []float64) error {
	var sum float64
	for _, v := range values {
		sum += v
	}
	if sum > 100+Tolerance {
		return &ConsistencyError{
			ExpenseID: expenseID,
			SplitType: SplitTypePercentage,
			Sum:       sum,
			Limit:     100,
		}
	}
	return nil
}
