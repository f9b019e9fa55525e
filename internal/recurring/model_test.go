package recurring

import (
	"testing"
	"time"
)

func TestNextRun(t *testing.T) {
	from := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency Frequency
		want      time.Time
	}{
		{name: "daily", frequency: FrequencyDaily, want: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)},
		{name: "weekly", frequency: FrequencyWeekly, want: time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC)},
		// Jan 31 + 1 month normalizes to Mar 3 (2026 is not a leap year)
		{name: "monthly end of month", frequency: FrequencyMonthly, want: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextRun(tt.frequency, from); !got.Equal(tt.want) {
				t.Errorf("NextRun(%s, %v) = %v, want %v", tt.frequency, from, got, tt.want)
			}
		})
	}
}

func TestIsValidFrequency(t *testing.T) {
	for _, f := range []string{"DAILY", "WEEKLY", "MONTHLY"} {
		if !IsValidFrequency(f) {
			t.Errorf("IsValidFrequency(%s) = false", f)
		}
	}
	for _, f := range []string{"daily", "YEARLY", ""} {
		if IsValidFrequency(f) {
			t.Errorf("IsValidFrequency(%s) = true", f)
		}
	}
}

func TestBuildRequest(t *testing.T) {
	template := &RecurringExpense{
		Description:  "Rent",
		Amount:       1500,
		Category:     "Rent",
		PaidBy:       "alice",
		Participants: []string{"alice", "bob", "carol"},
		Frequency:    FrequencyMonthly,
	}

	req := buildRequest(template)
	if req.Amount != 1500 || req.PaidBy != "alice" || req.Category != "Rent" {
		t.Fatalf("buildRequest() = %+v", req)
	}
	if len(req.Splits) != 3 {
		t.Fatalf("buildRequest() splits = %d, want 3", len(req.Splits))
	}
	for i, split := range req.Splits {
		if split.SplitType != "EQUAL" {
			t.Errorf("split %d type = %s, want EQUAL", i, split.SplitType)
		}
		if split.Name != template.Participants[i] {
			t.Errorf("split %d name = %s, want %s", i, split.Name, template.Participants[i])
		}
	}
}
