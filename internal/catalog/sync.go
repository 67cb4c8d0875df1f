package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/vyakarana/internal/entities"
)

// ErrSyncUnavailable indicates Sync needs both a CMS and a snapshot.
var ErrSyncUnavailable = errors.New("sync requires a cms source and a snapshot")

// Sync copies every published collection from the CMS into the snapshot and
// records the run. A failure leaves the previous snapshot in place for every
// collection not yet replaced.
func (s *Service) Sync(ctx context.Context, trigger string) (*entities.SyncRun, error) {
	if s.source == nil || s.snapshot == nil {
		return nil, ErrSyncUnavailable
	}

	run := &entities.SyncRun{
		Status:    entities.SyncStatusRunning,
		Trigger:   trigger,
		StartedAt: time.Now(),
	}
	if err := s.snapshot.RecordSyncRun(run); err != nil {
		return nil, fmt.Errorf("record sync start: %w", err)
	}

	log.Printf("[SYNC] Starting content sync (trigger: %s)", trigger)

	syncErr := s.syncCollections(ctx, run)

	finished := time.Now()
	run.FinishedAt = &finished
	if syncErr != nil {
		run.Status = entities.SyncStatusFailed
		run.Error = syncErr.Error()
		log.Printf("[SYNC] Content sync failed after %s: %v", run.Duration(), syncErr)
	} else {
		run.Status = entities.SyncStatusCompleted
		log.Printf("[SYNC] Content sync completed in %s: %d words, %d sutras, %d pratisakhya sutras, %d shabdas",
			run.Duration(), run.VocabularyCount, run.SutraCount, run.PratisakhyaCount, run.ShabdaCount)
	}

	if err := s.snapshot.RecordSyncRun(run); err != nil {
		log.Printf("[SYNC] Failed to record sync result: %v", err)
	}
	return run, syncErr
}

func (s *Service) syncCollections(ctx context.Context, run *entities.SyncRun) error {
	vocabulary, err := s.source.ListVocabulary(ctx)
	if err != nil {
		return fmt.Errorf("fetch vocabulary: %w", err)
	}
	if err := s.snapshot.ReplaceVocabulary(vocabulary); err != nil {
		return err
	}
	run.VocabularyCount = len(vocabulary)

	sutras, err := s.source.ListSutras(ctx)
	if err != nil {
		return fmt.Errorf("fetch sutras: %w", err)
	}
	if err := s.snapshot.ReplaceSutras(sutras); err != nil {
		return err
	}
	run.SutraCount = len(sutras)

	pratisakhya, err := s.source.ListPratisakhyaSutras(ctx)
	if err != nil {
		return fmt.Errorf("fetch pratisakhya sutras: %w", err)
	}
	if err := s.snapshot.ReplacePratisakhyaSutras(pratisakhya); err != nil {
		return err
	}
	run.PratisakhyaCount = len(pratisakhya)

	shabdas, err := s.source.ListShabdas(ctx)
	if err != nil {
		return fmt.Errorf("fetch shabdas: %w", err)
	}
	if err := s.snapshot.ReplaceShabdas(shabdas); err != nil {
		return err
	}
	run.ShabdaCount = len(shabdas)

	return nil
}

// SyncStatus summarises the snapshot freshness.
type SyncStatus struct {
	LastRun        *entities.SyncRun `json:"last_run,omitempty"`
	LastSuccessful *entities.SyncRun `json:"last_successful,omitempty"`
}

// SyncStatus reports the latest run and the latest successful run.
func (s *Service) SyncStatus() (*SyncStatus, error) {
	if s.snapshot == nil {
		return &SyncStatus{}, nil
	}

	status := &SyncStatus{}

	last, err := s.snapshot.LastSyncRun()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load last sync run: %w", err)
	}
	status.LastRun = last

	ok, err := s.snapshot.LastSuccessfulSyncRun()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load last successful sync run: %w", err)
	}
	status.LastSuccessful = ok

	return status, nil
}
