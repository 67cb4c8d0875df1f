package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/vyakarana/internal/catalog"
)

// NextRunner reports when the next scheduled sync fires.
type NextRunner interface {
	NextRun() *time.Time
}

// SyncController reports snapshot freshness.
type SyncController struct {
	catalog   Catalog
	scheduler NextRunner
}

func NewSyncController(catalog Catalog, scheduler NextRunner) *SyncController {
	return &SyncController{catalog: catalog, scheduler: scheduler}
}

// SyncStatusResponse is the body of GET /api/sync/status.
type SyncStatusResponse struct {
	catalog.SyncStatus
	NextRun *time.Time `json:"next_run,omitempty"`
}

// Status handles GET /api/sync/status
func (sc *SyncController) Status(c *gin.Context) {
	status, err := sc.catalog.SyncStatus()
	if err != nil {
		respondInternalError(c, err, "sync status")
		return
	}

	resp := SyncStatusResponse{SyncStatus: *status}
	if sc.scheduler != nil {
		resp.NextRun = sc.scheduler.NextRun()
	}
	c.JSON(200, resp)
}
