package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/vyakarana/internal/catalog"
	"github.com/mrlokans/vyakarana/internal/cms"
	"github.com/mrlokans/vyakarana/internal/config"
	"github.com/mrlokans/vyakarana/internal/database"
	http_controllers "github.com/mrlokans/vyakarana/internal/http"
	"github.com/mrlokans/vyakarana/internal/preferences"
	"github.com/mrlokans/vyakarana/internal/scheduler"
	"github.com/mrlokans/vyakarana/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// NewCatalogService wires the CMS client and the snapshot into a catalog.
// Offline services read the snapshot only.
func NewCatalogService(cfg *config.Config, db *database.Database, offline bool) *catalog.Service {
	opts := catalog.Options{
		FallbackToSnapshot: cfg.CMS.FallbackToCache,
		VocabularyPageSize: cfg.Vocabulary.PageSize,
		MediaBaseURL:       cfg.CMS.URL,
	}

	var snapshot catalog.Snapshot
	if db != nil {
		snapshot = db
	}

	if offline {
		return catalog.NewService(nil, snapshot, opts)
	}

	client := cms.NewClient(cms.Config{
		BaseURL:  cfg.CMS.URL,
		APIToken: cfg.CMS.APIToken,
		Timeout:  cfg.CMS.Timeout,
		PageSize: cfg.CMS.PageSize,
	})
	return catalog.NewService(client, snapshot, opts)
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Vyakarana v%s", version)
	log.Printf("Content source: %s", cfg.CMS.URL)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	svc := NewCatalogService(cfg, db, false)

	healthChecks := map[string]http_controllers.Pinger{"database": db}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskQueue http_controllers.TaskQueue
	var enqueuer scheduler.Enqueuer
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewSyncContentQueue(svc),
			tasks.NewPruneSyncRunsQueue(db),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		taskQueue = taskClient
		enqueuer = taskClient
		healthChecks["tasks"] = taskClient
	}

	// Schedule snapshot refreshes
	var syncScheduler *scheduler.ContentSyncScheduler
	var nextRunner http_controllers.NextRunner
	var schedulerCancel context.CancelFunc
	if cfg.Sync.Enabled {
		syncScheduler = scheduler.NewContentSyncScheduler(cfg.Sync.Schedule, enqueuer, svc)

		var schedulerCtx context.Context
		schedulerCtx, schedulerCancel = context.WithCancel(context.Background())
		if err := syncScheduler.Start(schedulerCtx); err != nil {
			log.Fatalf("Failed to start sync scheduler: %v", err)
		}
		nextRunner = syncScheduler

		// Populate an empty snapshot right away
		if _, err := db.LastSuccessfulSyncRun(); err != nil {
			syncScheduler.RunNow()
		}
	} else {
		log.Printf("[SYNC] Scheduled sync disabled")
	}

	sqlDB, err := db.SQLDB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	prefs, err := preferences.NewManager(sqlDB, cfg.Session)
	if err != nil {
		log.Fatalf("Failed to initialize preferences: %v", err)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:       svc,
		Preferences:   prefs,
		TaskQueue:     taskQueue,
		Scheduler:     nextRunner,
		HealthChecks:  healthChecks,
		Version:       version,
		SecureCookies: cfg.Session.SecureCookies,
	})

	onShutdown := func(ctx context.Context) {
		if syncScheduler != nil && schedulerCancel != nil {
			syncScheduler.Stop()
			schedulerCancel()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
