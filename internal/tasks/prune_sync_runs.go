package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// DefaultSyncRunsToKeep bounds the refresh history when a task does not say.
const DefaultSyncRunsToKeep = 100

// SyncRunPruner trims the refresh history.
type SyncRunPruner interface {
	PruneSyncRuns(keep int) (int64, error)
}

// PruneSyncRunsTask removes old sync run records, keeping the newest Keep.
type PruneSyncRunsTask struct {
	Keep int `json:"keep"`
}

// Config returns the queue configuration for sync history pruning.
func (t PruneSyncRunsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prune_sync_runs",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PruneSyncRunsProcessor creates a processor function for PruneSyncRunsTask.
func PruneSyncRunsProcessor(pruner SyncRunPruner) backlite.QueueProcessor[PruneSyncRunsTask] {
	return func(ctx context.Context, task PruneSyncRunsTask) error {
		if pruner == nil {
			return fmt.Errorf("sync run pruner not configured")
		}

		keep := task.Keep
		if keep <= 0 {
			keep = DefaultSyncRunsToKeep
		}

		deleted, err := pruner.PruneSyncRuns(keep)
		if err != nil {
			return fmt.Errorf("prune sync runs: %w", err)
		}

		log.Printf("[TASK] Pruned %d old sync runs", deleted)
		return nil
	}
}

// NewPruneSyncRunsQueue creates a backlite queue for sync history pruning.
func NewPruneSyncRunsQueue(pruner SyncRunPruner) backlite.Queue {
	return backlite.NewQueue(PruneSyncRunsProcessor(pruner))
}
