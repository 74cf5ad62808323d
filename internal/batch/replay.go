// Package batch replays an ordered batch of ledger events through the
// incremental reconciliation path and checks the result against a recompute.
package batch

import (
	"errors"
	"fmt"

	"fjacquet/budget-sync/internal/loaderror"
	"fjacquet/budget-sync/internal/logging"
	"fjacquet/budget-sync/internal/reconcile"
	"fjacquet/budget-sync/internal/store"
)

// Result summarises a replay
type Result struct {
	Applied int
	Skipped int
	Clamps  int
	Drifts  []reconcile.Drift
}

// Consistent reports whether the incremental state matched a recompute
func (r Result) Consistent() bool {
	return len(r.Drifts) == 0
}

// Replayer mirrors events into a ledger and forwards them to an engine.
type Replayer struct {
	engine *reconcile.Engine
	ledger *store.MemoryLedger
	logger logging.Logger
	strict bool
}

// NewReplayer creates a Replayer. engine must have been built over ledger.
//
// In strict mode an event that does not fit the ledger (duplicate add,
// update or delete of an unknown id) stops the replay with an error. Otherwise
// it is logged and still forwarded to the engine where that makes sense, so a
// delete the ledger never saw exercises the engine's zero floor.
func NewReplayer(engine *reconcile.Engine, ledger *store.MemoryLedger, logger logging.Logger, strict bool) *Replayer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Replayer{engine: engine, ledger: ledger, logger: logger, strict: strict}
}

// Replay applies events in order, then verifies every budget against the final ledger.
func (r *Replayer) Replay(events []store.Event) (Result, error) {
	var result Result
	clampsBefore := r.engine.ClampCount()

	for _, ev := range events {
		applied, err := r.apply(ev)
		if err != nil {
			if r.strict {
				return result, fmt.Errorf("line %d: %w", ev.Line, err)
			}
			r.logger.WithError(err).Warn("Event does not match ledger state",
				logging.F(logging.FieldOperation, string(ev.Op)),
				logging.F(logging.FieldTransactionID, ev.Transaction.ID))
		}
		if applied {
			result.Applied++
		} else {
			result.Skipped++
		}
	}

	result.Clamps = r.engine.ClampCount() - clampsBefore
	result.Drifts = r.engine.Verify(r.ledger)

	r.logger.Info("Replay finished",
		logging.F(logging.FieldCount, result.Applied),
		logging.F("skipped", result.Skipped),
		logging.F("clamps", result.Clamps),
		logging.F("drifts", len(result.Drifts)))
	return result, nil
}

// apply mirrors one event. It reports whether the engine saw the event.
func (r *Replayer) apply(ev store.Event) (bool, error) {
	tx := ev.Transaction
	switch ev.Op {
	case store.OpAdd:
		if err := r.ledger.Add(tx); err != nil {
			return false, err
		}
		r.engine.TransactionAdded(tx)
		return true, nil

	case store.OpUpdate:
		old, err := r.ledger.Update(tx)
		if err != nil {
			return false, err
		}
		r.engine.TransactionUpdated(old, tx)
		return true, nil

	case store.OpDelete:
		old, err := r.ledger.Delete(tx.ID)
		var notFound *loaderror.NotFoundError
		if errors.As(err, &notFound) && !r.strict {
			if ev.IDOnly() {
				// nothing to reverse without the ledger's copy
				return false, err
			}
			// the engine only has the event's own copy of the transaction
			r.engine.TransactionDeleted(tx)
			return true, err
		}
		if err != nil {
			return false, err
		}
		r.engine.TransactionDeleted(old)
		return true, nil

	default:
		return false, fmt.Errorf("unknown event op %q", ev.Op)
	}
}
