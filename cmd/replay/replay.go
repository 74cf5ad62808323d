// Package replay handles replaying ledger events through the incremental path
package replay

import (
	"errors"
	"fmt"

	"fjacquet/budget-sync/cmd/common"
	"fjacquet/budget-sync/cmd/root"
	"fjacquet/budget-sync/internal/batch"
	"fjacquet/budget-sync/internal/container"
	"fjacquet/budget-sync/internal/store"

	"github.com/spf13/cobra"
)

// ErrDrift is returned when the incremental state disagrees with a recompute
var ErrDrift = errors.New("incremental state drifted from recompute")

var (
	eventsFile string
	strict     bool
)

// Cmd represents the replay command
var Cmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay ledger events and verify against a recompute",
	Long: `Start from an empty ledger, apply an events file (add, update, delete)
through the incremental path, then compare every budget against a full
recompute of the resulting ledger. Exits non-zero on drift unless
reconcile.fail_on_drift is false.`,
	Run: replayFunc,
}

func init() {
	Cmd.Flags().StringVarP(&eventsFile, "events", "e", "", "Events CSV file (op,id,date,category,amount,description)")
	Cmd.Flags().BoolVar(&strict, "strict", false, "Stop on events that do not match the ledger instead of logging them")
	_ = Cmd.MarkFlagRequired("events")
}

func replayFunc(cmd *cobra.Command, args []string) {
	flags := root.SharedFlags
	c := root.GetContainer()
	result, err := Run(c, eventsFile, flags.Budgets, strict)
	if err != nil {
		root.Log.Fatalf("Error replaying events: %v", err)
	}
	if err := common.WriteStatus(c, c.GetBudgetStore().Budgets(), flags.Format, flags.Output); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	if err := CheckDrift(result, c.GetConfig().Reconcile.FailOnDrift); err != nil {
		root.Log.Fatalf("%v", err)
	}
}

// Run replays the events file against the budgets file, starting from an empty ledger.
func Run(c *container.Container, eventsPath, budgetsPath string, strict bool) (batch.Result, error) {
	events, err := c.GetLoader().LoadEventsCSV(eventsPath)
	if err != nil {
		return batch.Result{}, fmt.Errorf("error loading events: %w", err)
	}

	ledger := &store.MemoryLedger{}
	if _, err := c.LoadBudgets(budgetsPath, ledger); err != nil {
		return batch.Result{}, fmt.Errorf("error loading budgets: %w", err)
	}

	replayer := batch.NewReplayer(c.NewEngine(ledger), ledger, c.GetLogger(), strict)
	return replayer.Replay(events)
}

// CheckDrift turns drift into an error when failOnDrift is set. Each drift is
// logged either way.
func CheckDrift(result batch.Result, failOnDrift bool) error {
	for _, d := range result.Drifts {
		root.Log.Warn(d.String())
	}
	if failOnDrift && !result.Consistent() {
		return fmt.Errorf("%w: %d budget(s), %d clamp(s)", ErrDrift, len(result.Drifts), result.Clamps)
	}
	return nil
}
