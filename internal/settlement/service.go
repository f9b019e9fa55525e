package settlement

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
)

// SnapshotSource provides a consistent read of people, expenses and splits.
// Each request gets its own snapshot, so the computation below is safe to run
// concurrently.
type SnapshotSource interface {
	BuildSnapshot(ctx context.Context) (*Snapshot, error)
}

// Service computes balances and settlement plans over data snapshots
type Service struct {
	source       SnapshotSource
	splitFactory *split.Factory
}

// NewService creates a new settlement service with dependencies injected
func NewService(source SnapshotSource, splitFactory *split.Factory) *Service {
	return &Service{
		source:       source,
		splitFactory: splitFactory,
	}
}

// GetBalances returns every person's paid/owes/balance figures
func (s *Service) GetBalances(ctx context.Context) ([]Balance, error) {
	snap, err := s.source.BuildSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.ComputeBalances(snap)
}

// GetSummary returns the balances together with a settlement plan
func (s *Service) GetSummary(ctx context.Context) (*SummaryResponse, error) {
	balances, err := s.GetBalances(ctx)
	if err != nil {
		return nil, err
	}
	return &SummaryResponse{
		Summary:     balances,
		Settlements: PlanSettlements(balances),
	}, nil
}

// ComputeBalances turns a snapshot into per-person balance figures. Every
// expense passes the aggregate consistency check before any figure is
// trusted; the first violation aborts the whole computation.
func (s *Service) ComputeBalances(snap *Snapshot) ([]Balance, error) {
	paid := make(map[int64]float64)
	owes := make(map[int64]float64)

	for i := range snap.Expenses {
		e := &snap.Expenses[i]
		if err := s.checkExpense(e); err != nil {
			return nil, err
		}

		paid[e.PaidBy] += e.Amount

		count := len(e.Splits)
		for _, row := range e.Splits {
			strategy, err := s.splitFactory.Create(row.SplitType)
			if err != nil {
				return nil, fmt.Errorf("expense %d: %w", e.ID, err)
			}
			owes[row.PersonID] += strategy.Share(row.Value, e.Amount, count)
		}
	}

	balances := make([]Balance, len(snap.People))
	for i, p := range snap.People {
		paidAmount := split.RoundToTwoDecimals(paid[p.ID])
		owesAmount := split.RoundToTwoDecimals(owes[p.ID])
		balances[i] = Balance{
			Name: p.Name,
			Paid: paidAmount,
			Owes: owesAmount,
			// computed from the rounded figures, not the raw sums
			Balance: split.RoundToTwoDecimals(paidAmount - owesAmount),
		}
	}
	return balances, nil
}

// checkExpense validates the aggregate consistency of one expense's split set
func (s *Service) checkExpense(e *ExpenseRow) error {
	values := make(map[split.SplitType][]float64)
	for _, row := range e.Splits {
		values[row.SplitType] = append(values[row.SplitType], row.Value)
	}

	// fixed order keeps the reported violation stable
	for _, splitType := range []split.SplitType{split.SplitTypeEqual, split.SplitTypePercentage, split.SplitTypeExact} {
		vs, ok := values[splitType]
		if !ok {
			continue
		}
		delete(values, splitType)

		strategy, err := s.splitFactory.Create(splitType)
		if err != nil {
			return fmt.Errorf("expense %d: %w", e.ID, err)
		}
		if err := strategy.ValidateSet(e.ID, e.Amount, vs); err != nil {
			return err
		}
	}
	for splitType := range values {
		return fmt.Errorf("expense %d: %w: %s", e.ID, split.ErrUnknownSplitType, splitType)
	}
	return nil
}

// PlanSettlements produces a greedy plan of transfers that zeroes all
// balances: creditors and debtors are sorted by magnitude and matched with
// two cursors, each transfer being the minimum of the pair's remaining
// amounts. Residues below tolerance are treated as settled noise. The sweep
// emits at most creditors+debtors-1 transfers; it favors simplicity over the
// globally minimal cash flow.
func PlanSettlements(balances []Balance) []Transfer {
	type working struct {
		name   string
		amount float64
	}

	var creditors, debtors []working
	for _, b := range balances {
		switch {
		case b.Balance > 0:
			creditors = append(creditors, working{name: b.Name, amount: b.Balance})
		case b.Balance < 0:
			debtors = append(debtors, working{name: b.Name, amount: -b.Balance})
		}
	}

	// stable sorts preserve snapshot order for equal balances
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })

	transfers := make([]Transfer, 0)
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(debtors[i].amount, creditors[j].amount)

		if amount > split.Tolerance {
			transfers = append(transfers, Transfer{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: split.RoundToTwoDecimals(amount),
			})
		}

		// adjust by the raw amount so rounding error does not compound
		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount < split.Tolerance {
			i++
		}
		if creditors[j].amount < split.Tolerance {
			j++
		}
	}

	return transfers
}
