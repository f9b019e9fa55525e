package split

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the expense evenly among all participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Share divides the expense amount evenly. A participant count of zero is
// substituted with one so a degenerate snapshot never divides by zero.
func (s *EqualStrategy) Share(_ float64, expenseAmount float64, participantCount int) float64 {
	if participantCount < 1 {
		participantCount = 1
	}
	return expenseAmount / float64(participantCount)
}

// ValidateValue accepts anything; the declared value is ignored for equal splits
func (s *EqualStrategy) ValidateValue(_ float64) error {
	return nil
}

// ValidateSet always passes: an equal split carries no aggregate constraint
func (s *EqualStrategy) ValidateSet(_ int64, _ float64, _ []float64) error {
	return nil
}
