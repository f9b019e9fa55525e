package split

import (
	"errors"
	"math"
	"testing"
)

func TestFactoryCreate(t *testing.T) {
	factory := NewSplitStrategyFactory()

	for _, splitType := range []SplitType{SplitTypeEqual, SplitTypePercentage, SplitTypeExact} {
		strategy, err := factory.Create(splitType)
		if err != nil {
			t.Fatalf("Create(%s) error = %v", splitType, err)
		}
		if strategy.Type() != splitType {
			t.Errorf("Create(%s).Type() = %s", splitType, strategy.Type())
		}
	}

	if _, err := factory.CreateFromString("RANDOM"); !errors.Is(err, ErrUnknownSplitType) {
		t.Errorf("CreateFromString(RANDOM) error = %v, want ErrUnknownSplitType", err)
	}
}

func TestShare(t *testing.T) {
	tests := []struct {
		name      string
		splitType SplitType
		value     float64
		amount    float64
		count     int
		want      float64
	}{
		{name: "equal three ways", splitType: SplitTypeEqual, amount: 300, count: 3, want: 100},
		{name: "equal two ways uneven", splitType: SplitTypeEqual, amount: 100, count: 3, want: 100.0 / 3},
		{name: "equal zero count falls back to one", splitType: SplitTypeEqual, amount: 80, count: 0, want: 80},
		{name: "percentage half", splitType: SplitTypePercentage, value: 50, amount: 200, count: 2, want: 100},
		{name: "percentage ignores count", splitType: SplitTypePercentage, value: 25, amount: 80, count: 5, want: 20},
		{name: "exact passes value through", splitType: SplitTypeExact, value: 42.5, amount: 100, count: 4, want: 42.5},
	}

	factory := NewSplitStrategyFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := factory.Create(tt.splitType)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			got := strategy.Share(tt.value, tt.amount, tt.count)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Share() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualSharesSumToAmount(t *testing.T) {
	strategy := &EqualStrategy{}
	amount := 100.0
	for _, n := range []int{1, 2, 3, 7} {
		var sum float64
		for i := 0; i < n; i++ {
			sum += strategy.Share(0, amount, n)
		}
		if math.Abs(sum-amount) > 1e-9 {
			t.Errorf("sum of %d equal shares = %v, want %v", n, sum, amount)
		}
	}
}

func TestPercentageSharesSumProportionally(t *testing.T) {
	strategy := &PercentageStrategy{}
	amount := 240.0
	percentages := []float64{10, 25, 40}

	var sum, pctSum float64
	for _, p := range percentages {
		sum += strategy.Share(p, amount, len(percentages))
		pctSum += p
	}
	want := amount * pctSum / 100
	if math.Abs(sum-want) > 1e-9 {
		t.Errorf("sum of percentage shares = %v, want %v", sum, want)
	}
}

func TestValidateSet(t *testing.T) {
	tests := []struct {
		name      string
		splitType SplitType
		amount    float64
		values    []float64
		wantErr   bool
	}{
		{name: "equal never constrained", splitType: SplitTypeEqual, amount: 10, values: []float64{999, 999}, wantErr: false},
		{name: "exact over allocation rejected", splitType: SplitTypeExact, amount: 100, values: []float64{40, 70}, wantErr: true},
		{name: "exact one over rejected", splitType: SplitTypeExact, amount: 100, values: []float64{50, 51}, wantErr: true},
		{name: "exact under allocation accepted", splitType: SplitTypeExact, amount: 100, values: []float64{40, 59.99}, wantErr: false},
		{name: "exact within tolerance accepted", splitType: SplitTypeExact, amount: 100, values: []float64{50, 50.005}, wantErr: false},
		{name: "percentage 110 rejected", splitType: SplitTypePercentage, amount: 200, values: []float64{50, 60}, wantErr: true},
		{name: "percentage 101 rejected", splitType: SplitTypePercentage, amount: 200, values: []float64{50, 51}, wantErr: true},
		{name: "percentage exactly 100 accepted", splitType: SplitTypePercentage, amount: 200, values: []float64{50, 50}, wantErr: false},
		{name: "percentage within tolerance accepted", splitType: SplitTypePercentage, amount: 200, values: []float64{50, 50.005}, wantErr: false},
	}

	factory := NewSplitStrategyFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := factory.Create(tt.splitType)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			err = strategy.ValidateSet(7, tt.amount, tt.values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var consistencyErr *ConsistencyError
				if !errors.As(err, &consistencyErr) {
					t.Fatalf("ValidateSet() error type = %T, want *ConsistencyError", err)
				}
				if consistencyErr.ExpenseID != 7 {
					t.Errorf("ConsistencyError.ExpenseID = %d, want 7", consistencyErr.ExpenseID)
				}
				var wantSum float64
				for _, v := range tt.values {
					wantSum += v
				}
				if math.Abs(consistencyErr.Sum-wantSum) > 1e-9 {
					t.Errorf("ConsistencyError.Sum = %v, want %v", consistencyErr.Sum, wantSum)
				}
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	percentage := &PercentageStrategy{}
	if err := percentage.ValidateValue(101); !errors.Is(err, ErrPercentageOutOfRange) {
		t.Errorf("ValidateValue(101) error = %v, want ErrPercentageOutOfRange", err)
	}
	if err := percentage.ValidateValue(-1); !errors.Is(err, ErrPercentageOutOfRange) {
		t.Errorf("ValidateValue(-1) error = %v, want ErrPercentageOutOfRange", err)
	}
	if err := percentage.ValidateValue(33.3); err != nil {
		t.Errorf("ValidateValue(33.3) error = %v", err)
	}

	exact := &ExactStrategy{}
	if err := exact.ValidateValue(-0.01); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("ValidateValue(-0.01) error = %v, want ErrNegativeAmount", err)
	}
	if err := exact.ValidateValue(0); err != nil {
		t.Errorf("ValidateValue(0) error = %v", err)
	}
}

func TestRoundToTwoDecimals(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 33.333333, want: 33.33},
		{in: 66.666666, want: 66.67},
		{in: 0.005, want: 0.01},
		{in: -0.005, want: -0.01},
		{in: 100, want: 100},
	}
	for _, tt := range tests {
		if got := RoundToTwoDecimals(tt.in); got != tt.want {
			t.Errorf("RoundToTwoDecimals(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
