package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/vyakarana/internal/tasks"
)

const (
	scheduleTrigger   = "schedule"
	inlineSyncTimeout = 10 * time.Minute
)

// Enqueuer hands a task to the background queue.
type Enqueuer interface {
	Enqueue(task backlite.Task) (string, error)
}

// ContentSyncScheduler refreshes the snapshot periodically. With a queue it
// enqueues sync_content tasks; without one it runs the sync itself.
type ContentSyncScheduler struct {
	schedule string
	queue    Enqueuer
	syncer   tasks.ContentSyncer

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isSyncing  bool
	cancelFunc context.CancelFunc
}

// NewContentSyncScheduler creates a scheduler. queue may be nil.
func NewContentSyncScheduler(schedule string, queue Enqueuer, syncer tasks.ContentSyncer) *ContentSyncScheduler {
	return &ContentSyncScheduler{
		schedule: schedule,
		queue:    queue,
		syncer:   syncer,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start registers the job and starts the cron loop until ctx is cancelled.
func (s *ContentSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runSync)
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	next, _ := NextRunTime(s.schedule, time.Now())
	log.Printf("[SYNC] Scheduler started with schedule '%s' (%s). Next run: %v",
		s.schedule, CronDescription(s.schedule), next)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the cron loop and waits for a running job to return.
func (s *ContentSyncScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.cron.Remove(s.entryID)
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	if cancel != nil {
		cancel()
	}

	log.Printf("[SYNC] Scheduler stopped")
}

// RunNow triggers a sync outside the schedule.
func (s *ContentSyncScheduler) RunNow() {
	go s.runSync()
}

// IsRunning returns whether the scheduler is active.
func (s *ContentSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// IsSyncing returns whether an inline sync is in progress.
func (s *ContentSyncScheduler) IsSyncing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isSyncing
}

// NextRun returns when the job fires next, or nil when stopped.
func (s *ContentSyncScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *ContentSyncScheduler) runSync() {
	if s.queue != nil {
		id, err := s.queue.Enqueue(tasks.SyncContentTask{Trigger: scheduleTrigger})
		if err != nil {
			log.Printf("[SYNC] Failed to enqueue scheduled sync: %v", err)
			return
		}
		log.Printf("[SYNC] Enqueued scheduled sync task %s", id)
		return
	}

	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		log.Printf("[SYNC] Skipped scheduled sync (already syncing)")
		return
	}
	s.isSyncing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSyncing = false
		s.mu.Unlock()
	}()

	if s.syncer == nil {
		log.Printf("[SYNC] Skipped scheduled sync (no syncer configured)")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), inlineSyncTimeout)
	defer cancel()

	if _, err := s.syncer.Sync(ctx, scheduleTrigger); err != nil {
		log.Printf("[SYNC] Scheduled sync failed: %v", err)
	}
}
