package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())
	if cfg.SecureCookies {
		router.Use(StrictTransportSecurityMiddleware())
	}

	if cfg.Preferences != nil {
		router.Use(cfg.Preferences.LoadSave())
	}

	health := NewHealthController(cfg.HealthChecks, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	// Collation works without content
	collation := NewCollationController(cfg.Catalog)
	api.POST("/collation/sort", collation.Sort)
	api.POST("/collation/compare", collation.Compare)

	// Content endpoints
	vocabulary := NewVocabularyController(cfg.Catalog, cfg.Preferences)
	api.GET("/vocabulary", vocabulary.List)

	sutras := NewSutrasController(cfg.Catalog)
	api.GET("/sutras", sutras.List)
	api.GET("/sutras/page", sutras.Page)
	api.GET("/sutras/:number", sutras.Get)
	api.GET("/pratisakhya", sutras.ListPratisakhya)
	api.GET("/pratisakhya/:number", sutras.GetPratisakhya)
	api.GET("/maheshvara-sutras", sutras.Maheshvara)

	shabdas := NewShabdasController(cfg.Catalog)
	api.GET("/shabdas", shabdas.List)
	api.GET("/shabdas/index/:orderIndex", shabdas.GetByIndex)
	api.GET("/shabdas/:id", shabdas.Get)

	// Snapshot freshness
	syncController := NewSyncController(cfg.Catalog, cfg.Scheduler)
	api.GET("/sync/status", syncController.Status)

	// Task management endpoints
	if cfg.TaskQueue != nil {
		tasksController := NewTasksController(cfg.TaskQueue)
		api.GET("/tasks/types", tasksController.ListTaskTypes)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
		api.POST("/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
