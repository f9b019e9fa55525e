package split

// =============================================================================
// EXACT SPLIT STRATEGY
// Each participant owes a specific declared amount
// =============================================================================

// ExactStrategy implements the Strategy interface for exact amount splits
type ExactStrategy struct{}

// Type returns the split type identifier
func (s *ExactStrategy) Type() SplitType {
	return SplitTypeExact
}

// Share returns the declared amount, independent of the other splits
func (s *ExactStrategy) Share(value, _ float64, _ int) float64 {
	return value
}

// ValidateValue checks that a single declared amount is not negative
func (s *ExactStrategy) ValidateValue(value float64) error {
	if value < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// ValidateSet rejects a split set whose declared amounts sum past the expense
// amount beyond tolerance
func (s *ExactStrategy) ValidateSet(expenseID int64, expenseAmount float64, values []float64) error {
	var sum float64
	for _, v := range values {
		sum += v
	}
	if sum > expenseAmount+Tolerance {
		return &ConsistencyError{
			ExpenseID: expenseID,
			SplitType: SplitTypeExact,
			Sum:       sum,
			Limit:     expenseAmount,
		}
	}
	return nil
}
