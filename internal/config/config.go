package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		CMS
		Database
		Sync
		Tasks
		Session
		Vocabulary
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	CMS struct {
		URL             string
		APIToken        string
		Timeout         time.Duration
		PageSize        int
		FallbackToCache bool // Serve the local snapshot when the CMS is unreachable
	}
	Database struct {
		Path string
	}
	Sync struct {
		Enabled  bool
		Schedule string // Cron format: "*/30 * * * *" = every 30 minutes
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Session struct {
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
	}
	Vocabulary struct {
		PageSize int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// CMS defaults
	v.SetDefault("cms_url", DefaultCMSURL)
	v.SetDefault("cms_api_token", "")
	v.SetDefault("cms_timeout", "10s")
	v.SetDefault("cms_page_size", 100)
	v.SetDefault("cms_fallback_to_cache", true)

	// Snapshot sync defaults
	v.SetDefault("sync_enabled", true)
	v.SetDefault("sync_schedule", "*/30 * * * *")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Reader preferences
	v.SetDefault("session_lifetime", "720h") // 30 days
	v.SetDefault("secure_cookies", false)
	v.SetDefault("vocabulary_page_size", 10)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		CMS: CMS{
			URL:             v.GetString("CMS_URL"),
			APIToken:        v.GetString("CMS_API_TOKEN"),
			Timeout:         v.GetDuration("CMS_TIMEOUT"),
			PageSize:        v.GetInt("CMS_PAGE_SIZE"),
			FallbackToCache: v.GetBool("CMS_FALLBACK_TO_CACHE"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Sync: Sync{
			Enabled:  v.GetBool("SYNC_ENABLED"),
			Schedule: v.GetString("SYNC_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Session: Session{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Vocabulary: Vocabulary{
			PageSize: v.GetInt("VOCABULARY_PAGE_SIZE"),
		},
	}
}
