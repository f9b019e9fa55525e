package settlement

// SummaryResponse is the settlement report: every person's balance plus the
// transfers that bring all balances to zero
type SummaryResponse struct {
	Summary     []Balance  `json:"summary"`
	Settlements []Transfer `json:"settlements"`
}
