package create

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/budget-sync/internal/config"
	"fjacquet/budget-sync/internal/container"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.NewContainerWithLogger(config.DefaultConfig(), logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func writeLedger(t *testing.T, dir string) string {
	t.Helper()
	file := filepath.Join(dir, "ledger.csv")
	require.NoError(t, os.WriteFile(file, []byte(`id,date,category,amount
t1,2025-01-05,Food,-30
t2,2025-01-25,food,-45
t3,2025-02-02,Food,-99
`), 0600))
	return file
}

func TestRun_Backfill(t *testing.T) {
	dir := t.TempDir()
	ledger := writeLedger(t, dir)

	b, err := Run(newContainer(t), ledger, filepath.Join(dir, "budgets.yaml"), Options{
		Category:  "Food",
		Allocated: "500",
		Anchor:    "2025-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PeriodMonthly, b.PeriodType)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), b.StartDate)
	assert.True(t, b.SpentAmount.Equal(decimal.NewFromInt(75)))
	assert.True(t, b.RemainingAmount.Equal(decimal.NewFromInt(425)))

	_, err = os.Stat(filepath.Join(dir, "budgets.yaml"))
	assert.True(t, os.IsNotExist(err), "nothing is saved without --save")
}

func TestRun_Save(t *testing.T) {
	dir := t.TempDir()
	ledger := writeLedger(t, dir)
	budgetsFile := filepath.Join(dir, "budgets.yaml")

	_, err := Run(newContainer(t), ledger, budgetsFile, Options{
		Category: "Food", Allocated: "500", Period: "weekly", Anchor: "2025-01-05", Save: true,
	})
	require.NoError(t, err)
	_, err = Run(newContainer(t), ledger, budgetsFile, Options{
		Category: "Food", Allocated: "6000", Period: "yearly", Anchor: "2025-01-05", Save: true,
	})
	require.NoError(t, err)

	c := newContainer(t)
	defs, err := c.GetLoader().LoadBudgetsYAML(budgetsFile)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, models.PeriodWeekly, defs[0].Period)
	assert.Equal(t, models.PeriodYearly, defs[1].Period)
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad amount", Options{Category: "Food", Allocated: "lots"}},
		{"negative amount", Options{Category: "Food", Allocated: "-1"}},
		{"bad period", Options{Category: "Food", Allocated: "1", Period: "daily"}},
		{"bad anchor", Options{Category: "Food", Allocated: "1", Anchor: "someday"}},
		{"empty amount", Options{Category: "Food", Allocated: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(newContainer(t), "", "", tt.opts)
			assert.Error(t, err)
		})
	}
}
