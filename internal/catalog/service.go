// Package catalog turns CMS content into what the curriculum pages show:
// the glossary in varṇamālā order, sutra navigation, declension tables and
// the Māheśvara sūtras.
//
// Reads go to the CMS first. When the CMS is unavailable and fallback is
// enabled, the local snapshot answers instead and the result is marked stale.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/vyakarana/internal/cms"
	"github.com/mrlokans/vyakarana/internal/entities"
)

// ErrNotFound indicates the requested content does not exist.
var ErrNotFound = errors.New("not found")

// Source is the live content provider.
type Source interface {
	ListVocabulary(ctx context.Context) ([]entities.VocabularyEntry, error)
	ListSutras(ctx context.Context) ([]entities.Sutra, error)
	GetSutra(ctx context.Context, number string) (*entities.Sutra, error)
	ListPratisakhyaSutras(ctx context.Context) ([]entities.PratisakhyaSutra, error)
	GetPratisakhyaSutra(ctx context.Context, number string) (*entities.PratisakhyaSutra, error)
	ListShabdas(ctx context.Context) ([]entities.Shabda, error)
	GetShabda(ctx context.Context, id uint) (*entities.Shabda, error)
	GetShabdaByIndex(ctx context.Context, orderIndex int) (*entities.Shabda, error)
}

// Snapshot is the local copy of the last successful sync.
type Snapshot interface {
	ListVocabulary() ([]entities.VocabularyEntry, error)
	ReplaceVocabulary(entries []entities.VocabularyEntry) error
	ListSutras() ([]entities.Sutra, error)
	GetSutraByNumber(number string) (*entities.Sutra, error)
	ReplaceSutras(sutras []entities.Sutra) error
	ListPratisakhyaSutras() ([]entities.PratisakhyaSutra, error)
	GetPratisakhyaSutraByNumber(number string) (*entities.PratisakhyaSutra, error)
	ReplacePratisakhyaSutras(sutras []entities.PratisakhyaSutra) error
	ListShabdas() ([]entities.Shabda, error)
	GetShabda(id uint) (*entities.Shabda, error)
	GetShabdaByIndex(orderIndex int) (*entities.Shabda, error)
	ReplaceShabdas(shabdas []entities.Shabda) error
	RecordSyncRun(run *entities.SyncRun) error
	LastSyncRun() (*entities.SyncRun, error)
	LastSuccessfulSyncRun() (*entities.SyncRun, error)
}

// Options tune the service.
type Options struct {
	// FallbackToSnapshot serves the snapshot when the CMS is unavailable.
	FallbackToSnapshot bool
	// VocabularyPageSize is the number of glossary entries shown when the
	// caller does not ask for a specific limit.
	VocabularyPageSize int
	// MediaBaseURL resolves relative upload paths of audio files.
	MediaBaseURL string
}

// Service is the rendering collaborator behind the HTTP and CLI surfaces.
type Service struct {
	source   Source
	snapshot Snapshot
	opts     Options
}

// NewService builds a catalog. Either source or snapshot may be nil, but not
// both: a nil source reads the snapshot only (offline mode), a nil snapshot
// disables fallback and Sync.
func NewService(source Source, snapshot Snapshot, opts Options) *Service {
	if opts.VocabularyPageSize <= 0 {
		opts.VocabularyPageSize = DefaultVocabularyPageSize
	}
	return &Service{source: source, snapshot: snapshot, opts: opts}
}

// MediaBaseURL returns the base URL relative media paths are resolved against.
func (s *Service) MediaBaseURL() string {
	return s.opts.MediaBaseURL
}

// read resolves a value from the CMS, falling back to the snapshot. The bool
// result reports whether the snapshot answered.
func read[T any](ctx context.Context, s *Service, what string, remote func(context.Context) (T, error), local func() (T, error)) (T, bool, error) {
	var zero T

	if s.source != nil {
		v, err := remote(ctx)
		if err == nil {
			return v, false, nil
		}
		if errors.Is(err, cms.ErrNotFound) {
			return zero, false, fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		if !errors.Is(err, cms.ErrUnavailable) || !s.opts.FallbackToSnapshot || s.snapshot == nil {
			return zero, false, fmt.Errorf("load %s: %w", what, err)
		}
		log.Printf("[CMS] Failed to load %s, serving snapshot: %v", what, err)
	}

	if s.snapshot == nil {
		return zero, false, fmt.Errorf("load %s: no content source configured", what)
	}

	v, err := local()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, true, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	if err != nil {
		return zero, true, fmt.Errorf("load %s from snapshot: %w", what, err)
	}
	return v, true, nil
}
