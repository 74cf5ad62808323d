package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func januaryBudget() *Budget {
	b := &Budget{
		ID:              "b1",
		Category:        "Food",
		AllocatedAmount: decimal.NewFromInt(500),
		StartDate:       date(2025, time.January, 1),
		EndDate:         date(2025, time.January, 31),
		PeriodType:      PeriodMonthly,
	}
	b.Recalculate()
	return b
}

func TestBudget_Contains(t *testing.T) {
	b := januaryBudget()

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"start bound", date(2025, time.January, 1), true},
		{"end bound", date(2025, time.January, 31), true},
		{"end bound late in the day", time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC), true},
		{"middle", date(2025, time.January, 15), true},
		{"day before start", date(2024, time.December, 31), false},
		{"day after end", date(2025, time.February, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Contains(tt.date))
		})
	}
}

func TestBudget_Contains_MixedLocations(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	b := januaryBudget()
	b.StartDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, est)
	b.EndDate = time.Date(2025, time.January, 31, 0, 0, 0, 0, est)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"start bound in UTC", date(2025, time.January, 1), true},
		{"end bound in UTC", date(2025, time.January, 31), true},
		{"day before start in UTC", date(2024, time.December, 31), false},
		{"day after end in UTC", date(2025, time.February, 1), false},
		{"start bound east of UTC", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Contains(tt.date))
		})
	}
}

func TestBudget_RecalculateFloorsAtZero(t *testing.T) {
	b := januaryBudget()
	assert.True(t, b.RemainingAmount.Equal(decimal.NewFromInt(500)))

	b.SetSpent(decimal.NewFromInt(120))
	assert.True(t, b.RemainingAmount.Equal(decimal.NewFromInt(380)))
	assert.False(t, b.IsOverBudget())
	assert.True(t, b.OverBy().IsZero())

	b.SetSpent(decimal.NewFromInt(750))
	assert.True(t, b.RemainingAmount.IsZero())
	assert.True(t, b.IsOverBudget())
	assert.True(t, b.OverBy().Equal(decimal.NewFromInt(250)))
}

func TestBudget_ExactlyAtAllocationIsNotOver(t *testing.T) {
	b := januaryBudget()
	b.SetSpent(decimal.NewFromInt(500))
	assert.False(t, b.IsOverBudget())
	assert.True(t, b.RemainingAmount.IsZero())
}

func TestBudget_ZeroAllocation(t *testing.T) {
	b := januaryBudget()
	b.AllocatedAmount = decimal.Zero
	b.SetSpent(decimal.NewFromInt(1))
	assert.True(t, b.IsOverBudget())
	assert.True(t, b.RemainingAmount.IsZero())
}

func TestParsePeriodType(t *testing.T) {
	tests := []struct {
		input    string
		expected PeriodType
		wantErr  bool
	}{
		{"weekly", PeriodWeekly, false},
		{"Monthly", PeriodMonthly, false},
		{" YEARLY ", PeriodYearly, false},
		{"daily", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePeriodType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}
