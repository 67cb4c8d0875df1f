package entities

import "time"

type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
)

// SyncRun records one refresh of the local snapshot from the CMS.
type SyncRun struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Status            SyncStatus `gorm:"index;size:20" json:"status"`
	Trigger           string     `gorm:"size:32" json:"trigger"`
	VocabularyCount   int        `json:"vocabulary_count"`
	SutraCount        int        `json:"sutra_count"`
	PratisakhyaCount  int        `json:"pratisakhya_count"`
	ShabdaCount       int        `json:"shabda_count"`
	Error             string     `gorm:"type:text" json:"error,omitempty"`
	StartedAt         time.Time  `json:"started_at"`
	FinishedAt        *time.Time `json:"finished_at,omitempty"`
}

// Duration returns how long the run took, or zero while it is still running.
func (r SyncRun) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
