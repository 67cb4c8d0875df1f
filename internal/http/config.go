package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/vyakarana/internal/catalog"
	"github.com/mrlokans/vyakarana/internal/entities"
	"github.com/mrlokans/vyakarana/internal/preferences"
)

// Catalog is the read side the controllers render.
type Catalog interface {
	Vocabulary(ctx context.Context, q catalog.VocabularyQuery) (*catalog.VocabularyPage, error)
	SortWords(words []string) []string
	Sutras(ctx context.Context) ([]entities.Sutra, bool, error)
	Sutra(ctx context.Context, number string) (*entities.Sutra, bool, error)
	SutraPage(ctx context.Context, number string) (*catalog.SutraPage, error)
	Shabdas(ctx context.Context) ([]catalog.ShabdaView, bool, error)
	Shabda(ctx context.Context, id uint) (*catalog.ShabdaView, bool, error)
	ShabdaAt(ctx context.Context, orderIndex int) (*catalog.ShabdaView, bool, error)
	PratisakhyaSutras(ctx context.Context) ([]entities.PratisakhyaSutra, bool, error)
	PratisakhyaSutra(ctx context.Context, number string) (*entities.PratisakhyaSutra, bool, error)
	SyncStatus() (*catalog.SyncStatus, error)
}

// TaskQueue is the subset of the task client the API uses.
type TaskQueue interface {
	Enqueue(task backlite.Task) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	Catalog Catalog

	// Reader preferences (optional)
	Preferences *preferences.Manager

	// Task queue (optional)
	TaskQueue TaskQueue

	// Scheduled sync (optional)
	Scheduler NextRunner

	// Health checks, keyed by component name
	HealthChecks map[string]Pinger

	// Application info
	Version string

	// Serve HSTS when requests arrive over HTTPS
	SecureCookies bool
}
