package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/vyakarana/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReplaceVocabulary(t *testing.T) {
	db := setupTestDB(t)

	first := []entities.VocabularyEntry{
		{ID: 1, WordDevanagari: "राम", WordType: entities.WordTypeSubstantive, OrderIndex: 2, IsPublished: true},
		{ID: 2, WordDevanagari: "गच्छति", RootDevanagari: "गम्", WordType: entities.WordTypeVerb, OrderIndex: 1, IsPublished: true},
		{ID: 3, WordDevanagari: "draft", OrderIndex: 0, IsPublished: false},
	}
	require.NoError(t, db.ReplaceVocabulary(first))

	t.Run("lists published entries in CMS order", func(t *testing.T) {
		entries, err := db.ListVocabulary()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "गच्छति", entries[0].WordDevanagari)
		assert.Equal(t, "गम्", entries[0].RootDevanagari)
		assert.Equal(t, "राम", entries[1].WordDevanagari)
	})

	t.Run("second replace drops old rows", func(t *testing.T) {
		require.NoError(t, db.ReplaceVocabulary([]entities.VocabularyEntry{
			{ID: 10, WordDevanagari: "भवति", WordType: entities.WordTypeVerb, IsPublished: true},
		}))

		entries, err := db.ListVocabulary()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, uint(10), entries[0].ID)
	})

	t.Run("empty replace clears collection", func(t *testing.T) {
		require.NoError(t, db.ReplaceVocabulary(nil))

		entries, err := db.ListVocabulary()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestSutras(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.ReplaceSutras([]entities.Sutra{
		{ID: 7, Number: "1.1.2", SutraText: "अदेङ् गुणः", OrderIndex: 2, IsPublished: true},
		{ID: 5, Number: "1.1.1", SutraText: "वृद्धिरादैच्", OrderIndex: 1, IsPublished: true},
	}))

	sutras, err := db.ListSutras()
	require.NoError(t, err)
	require.Len(t, sutras, 2)
	assert.Equal(t, "1.1.1", sutras[0].Number)

	sutra, err := db.GetSutraByNumber("1.1.2")
	require.NoError(t, err)
	assert.Equal(t, "अदेङ् गुणः", sutra.SutraText)

	_, err = db.GetSutraByNumber("9.9.9")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPratisakhyaSutras(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.ReplacePratisakhyaSutras([]entities.PratisakhyaSutra{
		{ID: 1, Number: "1", SutraText: "अथ वर्णाः", Translation: "Agora, os sons", IsPublished: true},
	}))

	all, err := db.ListPratisakhyaSutras()
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := db.GetPratisakhyaSutraByNumber("1")
	require.NoError(t, err)
	assert.Equal(t, "Agora, os sons", got.Translation)

	_, err = db.GetPratisakhyaSutraByNumber("2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestShabdas(t *testing.T) {
	db := setupTestDB(t)

	rama := entities.Shabda{
		ID:          3,
		Title:       "राम",
		Category:    "अकारान्तः पुंलिङ्गः",
		OrderIndex:  1,
		IsPublished: true,
		Audio:       entities.Media{URL: "/uploads/rama.mp3", Name: "rama.mp3"},
		Declensions: []entities.Declension{
			{ID: 100, CaseLabel: "प्रथमा", Singular: "रामः", Dual: "रामौ", Plural: "रामाः"},
			{ID: 101, CaseLabel: "द्वितीया", Singular: "रामम्", Dual: "रामौ", Plural: "रामान्"},
		},
	}
	require.NoError(t, db.ReplaceShabdas([]entities.Shabda{rama}))

	t.Run("preloads declensions in CMS order", func(t *testing.T) {
		got, err := db.GetShabda(3)
		require.NoError(t, err)
		require.Len(t, got.Declensions, 2)
		assert.Equal(t, "प्रथमा", got.Declensions[0].CaseLabel)
		assert.Equal(t, "रामान्", got.Declensions[1].Plural)
		assert.Equal(t, "/uploads/rama.mp3", got.Audio.URL)
	})

	t.Run("lookup by order index", func(t *testing.T) {
		got, err := db.GetShabdaByIndex(1)
		require.NoError(t, err)
		assert.Equal(t, "राम", got.Title)

		_, err = db.GetShabdaByIndex(2)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("replace again does not duplicate declensions", func(t *testing.T) {
		require.NoError(t, db.ReplaceShabdas([]entities.Shabda{rama}))

		var count int64
		require.NoError(t, db.DB.Model(&entities.Declension{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)

		all, err := db.ListShabdas()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestSyncRuns(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.LastSyncRun()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	started := time.Now().Add(-time.Minute)
	failed := &entities.SyncRun{Status: entities.SyncStatusFailed, Trigger: "cli", StartedAt: started, Error: "cms unavailable"}
	require.NoError(t, db.RecordSyncRun(failed))

	run := &entities.SyncRun{Status: entities.SyncStatusRunning, Trigger: "schedule", StartedAt: time.Now()}
	require.NoError(t, db.RecordSyncRun(run))
	assert.NotZero(t, run.ID)

	finished := time.Now()
	run.Status = entities.SyncStatusCompleted
	run.FinishedAt = &finished
	run.VocabularyCount = 42
	require.NoError(t, db.RecordSyncRun(run))

	last, err := db.LastSyncRun()
	require.NoError(t, err)
	assert.Equal(t, run.ID, last.ID)
	assert.Equal(t, 42, last.VocabularyCount)

	ok, err := db.LastSuccessfulSyncRun()
	require.NoError(t, err)
	assert.Equal(t, run.ID, ok.ID)

	runs, err := db.ListSyncRuns(10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, failed.ID, runs[1].ID)
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.Ping(context.Background()))

	sqlDB, err := db.SQLDB()
	require.NoError(t, err)
	assert.NotNil(t, sqlDB)
}

func TestPruneSyncRuns(t *testing.T) {
	db := setupTestDB(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		run := &entities.SyncRun{Status: entities.SyncStatusCompleted, Trigger: "schedule", StartedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.RecordSyncRun(run))
	}

	deleted, err := db.PruneSyncRuns(0)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = db.PruneSyncRuns(2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	runs, err := db.ListSyncRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))

	deleted, err = db.PruneSyncRuns(10)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
