package settlement

import (
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
)

// Person is a participant as it appears in a snapshot
type Person struct {
	ID   int64
	Name string
}

// SplitRow is one person's declared share of an expense
type SplitRow struct {
	PersonID  int64
	SplitType split.SplitType
	Value     float64
}

// ExpenseRow is an expense together with its full split set
type ExpenseRow struct {
	ID     int64
	Amount float64
	PaidBy int64
	Splits []SplitRow
}

// Snapshot is a causally consistent read of everything the settlement
// computation needs. People are enumerated in id order so the computed
// output is reproducible for identical data.
type Snapshot struct {
	People   []Person
	Expenses []ExpenseRow
}

// Balance summarizes one person's position. All three figures are rounded to
// 2 decimals independently; positive balance means the person is owed money.
type Balance struct {
	Name    string  `json:"name"`
	Paid    float64 `json:"paid"`
	Owes    float64 `json:"owes"`
	Balance float64 `json:"balance"`
}

// Transfer is a single settling payment from a debtor to a creditor
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
