package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/vyakarana/internal/entities"
)

// ContentSyncer refreshes the local snapshot from the CMS.
type ContentSyncer interface {
	Sync(ctx context.Context, trigger string) (*entities.SyncRun, error)
}

// SyncContentTask pulls every published collection from the CMS into the snapshot.
type SyncContentTask struct {
	Trigger string `json:"trigger"`
}

// Config returns the queue configuration for content sync tasks.
func (t SyncContentTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "sync_content",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SyncContentProcessor creates a processor function for SyncContentTask.
func SyncContentProcessor(syncer ContentSyncer) backlite.QueueProcessor[SyncContentTask] {
	return func(ctx context.Context, task SyncContentTask) error {
		if syncer == nil {
			return fmt.Errorf("content syncer not configured")
		}

		trigger := task.Trigger
		if trigger == "" {
			trigger = "task"
		}

		run, err := syncer.Sync(ctx, trigger)
		if err != nil {
			return fmt.Errorf("sync content: %w", err)
		}

		log.Printf("[TASK] Content sync %d finished in %s", run.ID, run.Duration())
		return nil
	}
}

// NewSyncContentQueue creates a backlite queue for content sync tasks.
func NewSyncContentQueue(syncer ContentSyncer) backlite.Queue {
	return backlite.NewQueue(SyncContentProcessor(syncer))
}
