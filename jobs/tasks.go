package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeRecomputeBalances reconciles ledger current balances with the
	// posted journal.
	TaskTypeRecomputeBalances = "ledger:recompute"
)

// RecomputeBalancesPayload selects which ledgers to reconcile. An empty
// LedgerID means every ledger in the registry.
type RecomputeBalancesPayload struct {
	LedgerID string `json:"ledger_id,omitempty"`
}

// NewRecomputeBalancesTask constructs an Asynq task.
func NewRecomputeBalancesTask(payload RecomputeBalancesPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeRecomputeBalances, data), nil
}

// RecomputeBalancesHandler returns the Asynq handler for balance
// reconciliation backed by the ledger service.
func RecomputeBalancesHandler(service *ledgers.Service, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload RecomputeBalancesPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		if payload.LedgerID != "" {
			id, err := uuid.Parse(payload.LedgerID)
			if err != nil {
				return asynq.SkipRetry
			}
			_, err = service.RecomputeBalance(ctx, id)
			return err
		}
		all, err := service.List(ctx)
		if err != nil {
			return err
		}
		for _, ledger := range all {
			if _, err := service.RecomputeBalance(ctx, ledger.ID); err != nil {
				if logger != nil {
					logger.Warn("recompute balance", slog.String("ledger", ledger.ID.String()), slog.Any("error", err))
				}
				continue
			}
		}
		if logger != nil {
			logger.Info("ledger balances recomputed", slog.Int("count", len(all)))
		}
		return nil
	}
}
