package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/vyakarana/internal/cms"
	"github.com/mrlokans/vyakarana/internal/database"
	"github.com/mrlokans/vyakarana/internal/entities"
)

// fakeSource serves fixed content, or err for every call when set.
type fakeSource struct {
	vocabulary  []entities.VocabularyEntry
	sutras      []entities.Sutra
	pratisakhya []entities.PratisakhyaSutra
	shabdas     []entities.Shabda
	err         error
}

func (f *fakeSource) ListVocabulary(context.Context) ([]entities.VocabularyEntry, error) {
	return f.vocabulary, f.err
}

func (f *fakeSource) ListSutras(context.Context) ([]entities.Sutra, error) {
	return f.sutras, f.err
}

func (f *fakeSource) GetSutra(_ context.Context, number string) (*entities.Sutra, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.sutras {
		if s.Number == number {
			return &s, nil
		}
	}
	return nil, cms.ErrNotFound
}

func (f *fakeSource) ListPratisakhyaSutras(context.Context) ([]entities.PratisakhyaSutra, error) {
	return f.pratisakhya, f.err
}

func (f *fakeSource) GetPratisakhyaSutra(_ context.Context, number string) (*entities.PratisakhyaSutra, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.pratisakhya {
		if s.Number == number {
			return &s, nil
		}
	}
	return nil, cms.ErrNotFound
}

func (f *fakeSource) ListShabdas(context.Context) ([]entities.Shabda, error) {
	return f.shabdas, f.err
}

func (f *fakeSource) GetShabda(_ context.Context, id uint) (*entities.Shabda, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.shabdas {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, cms.ErrNotFound
}

func (f *fakeSource) GetShabdaByIndex(_ context.Context, orderIndex int) (*entities.Shabda, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.shabdas {
		if s.OrderIndex == orderIndex {
			return &s, nil
		}
	}
	return nil, cms.ErrNotFound
}

func setupSnapshot(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testContent() *fakeSource {
	return &fakeSource{
		vocabulary: []entities.VocabularyEntry{
			{ID: 1, WordDevanagari: "राम", IAST: "rāma", MeaningPT: "Rama", MeaningEN: "Rama, a name", WordType: entities.WordTypeSubstantive, Gender: "masculine", IsPublished: true},
			{ID: 2, WordDevanagari: "गच्छति", RootDevanagari: "गम्", IAST: "gacchati", MeaningEN: "to go", MeaningES: "va", WordType: entities.WordTypeVerb, IsPublished: true},
			{ID: 3, WordDevanagari: "भवति", RootDevanagari: "भू", IAST: "bhavati", MeaningPT: "<p>é, <b>torna-se</b></p>", WordType: entities.WordTypeVerb, IsPublished: true},
			{ID: 4, WordDevanagari: "अस्ति", RootDevanagari: "अस्", IAST: "asti", MeaningEN: "is", WordType: entities.WordTypeVerb, IsPublished: true},
			{ID: 5, WordDevanagari: "कृष्ण", IAST: "kṛṣṇa", ITRANS: "kRRiShNa", HarvardKyoto: "kRSNa", MeaningEN: "black", WordType: entities.WordTypeSubstantive, IsPublished: true},
		},
		sutras: []entities.Sutra{
			{ID: 1, Number: "1.1.1", SutraText: "वृद्धिरादैच्", OrderIndex: 1, IsPublished: true},
			{ID: 2, Number: "1.1.2", SutraText: "अदेङ् गुणः", OrderIndex: 2, IsPublished: true},
			{ID: 3, Number: "1.1.3", SutraText: "इको गुणवृद्धी", OrderIndex: 3, IsPublished: true},
		},
		pratisakhya: []entities.PratisakhyaSutra{
			{ID: 1, Number: "1", SutraText: "अथ वर्णाः", IsPublished: true},
		},
		shabdas: []entities.Shabda{
			{
				ID: 9, Title: "राम", OrderIndex: 1, IsPublished: true,
				Audio:       entities.Media{URL: "/uploads/rama_4f2.mp3", Name: "rama.mp3", Mime: "audio/mpeg"},
				Declensions: []entities.Declension{{CaseLabel: "1", Singular: "रामः", Dual: "रामौ", Plural: "रामाः"}},
			},
		},
	}
}

func TestRead_FallsBackToSnapshot(t *testing.T) {
	snapshot := setupSnapshot(t)
	source := testContent()

	svc := NewService(source, snapshot, Options{FallbackToSnapshot: true, MediaBaseURL: "http://cms:1337"})
	_, err := svc.Sync(context.Background(), "test")
	require.NoError(t, err)

	source.err = fmt.Errorf("dial: %w", cms.ErrUnavailable)

	page, err := svc.Vocabulary(context.Background(), VocabularyQuery{})
	require.NoError(t, err)
	assert.True(t, page.Stale)
	assert.Equal(t, 5, page.Total)

	sutra, stale, err := svc.Sutra(context.Background(), "1.1.2")
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Equal(t, "अदेङ् गुणः", sutra.SutraText)

	_, _, err = svc.Sutra(context.Background(), "9.9.9")
	assert.ErrorIs(t, err, ErrNotFound)

	shabda, _, err := svc.ShabdaAt(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, shabda.AudioInfo)
	assert.Equal(t, "http://cms:1337/uploads/rama_4f2.mp3", shabda.AudioInfo.URL)
	assert.Equal(t, "rama", shabda.AudioInfo.Name)
}

func TestRead_NoFallbackWhenDisabled(t *testing.T) {
	snapshot := setupSnapshot(t)
	source := &fakeSource{err: fmt.Errorf("dial: %w", cms.ErrUnavailable)}

	svc := NewService(source, snapshot, Options{FallbackToSnapshot: false})

	_, err := svc.Vocabulary(context.Background(), VocabularyQuery{})
	assert.ErrorIs(t, err, cms.ErrUnavailable)
}

func TestRead_NotFoundFromCMSDoesNotFallBack(t *testing.T) {
	svc := NewService(testContent(), setupSnapshot(t), Options{FallbackToSnapshot: true})

	_, _, err := svc.Shabda(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = svc.PratisakhyaSutra(context.Background(), "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRead_OfflineUsesSnapshotOnly(t *testing.T) {
	snapshot := setupSnapshot(t)
	require.NoError(t, snapshot.ReplacePratisakhyaSutras(testContent().pratisakhya))

	svc := NewService(nil, snapshot, Options{})

	all, stale, err := svc.PratisakhyaSutras(context.Background())
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Len(t, all, 1)

	_, err = svc.Sync(context.Background(), "cli")
	assert.ErrorIs(t, err, ErrSyncUnavailable)
}

func TestSync(t *testing.T) {
	snapshot := setupSnapshot(t)
	source := testContent()
	svc := NewService(source, snapshot, Options{})

	run, err := svc.Sync(context.Background(), "manual")
	require.NoError(t, err)
	assert.Equal(t, entities.SyncStatusCompleted, run.Status)
	assert.Equal(t, 5, run.VocabularyCount)
	assert.Equal(t, 3, run.SutraCount)
	assert.Equal(t, 1, run.PratisakhyaCount)
	assert.Equal(t, 1, run.ShabdaCount)
	require.NotNil(t, run.FinishedAt)

	stored, err := snapshot.ListShabdas()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "रामः", stored[0].Declensions[0].Singular)

	t.Run("failed sync is recorded and keeps the snapshot", func(t *testing.T) {
		source.err = fmt.Errorf("boom: %w", cms.ErrUnavailable)

		run, err := svc.Sync(context.Background(), "schedule")
		require.Error(t, err)
		assert.Equal(t, entities.SyncStatusFailed, run.Status)
		assert.Contains(t, run.Error, "boom")

		words, err := snapshot.ListVocabulary()
		require.NoError(t, err)
		assert.Len(t, words, 5)

		status, err := svc.SyncStatus()
		require.NoError(t, err)
		assert.Equal(t, run.ID, status.LastRun.ID)
		require.NotNil(t, status.LastSuccessful)
		assert.Equal(t, entities.SyncStatusCompleted, status.LastSuccessful.Status)
	})
}

func TestSyncStatus_Empty(t *testing.T) {
	svc := NewService(testContent(), setupSnapshot(t), Options{})

	status, err := svc.SyncStatus()
	require.NoError(t, err)
	assert.Nil(t, status.LastRun)
	assert.Nil(t, status.LastSuccessful)
}
