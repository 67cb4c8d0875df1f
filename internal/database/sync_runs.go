package database

import (
	"github.com/mrlokans/vyakarana/internal/entities"
)

// RecordSyncRun inserts a new run or updates an existing one.
func (d *Database) RecordSyncRun(run *entities.SyncRun) error {
	if run.ID == 0 {
		return d.DB.Create(run).Error
	}
	return d.DB.Save(run).Error
}

// LastSyncRun returns the most recently started run.
func (d *Database) LastSyncRun() (*entities.SyncRun, error) {
	var run entities.SyncRun
	err := d.DB.Order("started_at DESC").Order("id DESC").First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// LastSuccessfulSyncRun returns the most recent completed run.
func (d *Database) LastSuccessfulSyncRun() (*entities.SyncRun, error) {
	var run entities.SyncRun
	err := d.DB.Where("status = ?", entities.SyncStatusCompleted).
		Order("started_at DESC").Order("id DESC").First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListSyncRuns returns up to limit runs, newest first.
func (d *Database) ListSyncRuns(limit int) ([]entities.SyncRun, error) {
	var runs []entities.SyncRun
	query := d.DB.Order("started_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&runs).Error
	return runs, err
}

// PruneSyncRuns deletes all but the newest keep runs and reports how many
// were removed. A non-positive keep is a no-op.
func (d *Database) PruneSyncRuns(keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	var keepIDs []uint
	err := d.DB.Model(&entities.SyncRun{}).
		Order("started_at DESC").Order("id DESC").
		Limit(keep).
		Pluck("id", &keepIDs).Error
	if err != nil {
		return 0, err
	}
	if len(keepIDs) == 0 {
		return 0, nil
	}

	result := d.DB.Where("id NOT IN ?", keepIDs).Delete(&entities.SyncRun{})
	return result.RowsAffected, result.Error
}
