package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/vyakarana/internal/database"
	"github.com/mrlokans/vyakarana/internal/entities"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(BuildInfo{Version: "1.2.3", Commit: "abc123"})
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"vyakarana"}, args...))
	return out.String(), err
}

func TestSortCommand(t *testing.T) {
	input := "स\nक\n\n  ख  \nअ\nक\n"

	out, err := runApp(t, input, "sort")
	require.NoError(t, err)
	assert.Equal(t, "अ\nक\nक\nख\nस\n", out)

	out, err = runApp(t, input, "sort", "-u")
	require.NoError(t, err)
	assert.Equal(t, "अ\nक\nख\nस\n", out)

	out, err = runApp(t, input, "sort", "--reverse", "-")
	require.NoError(t, err)
	assert.Equal(t, "स\nख\nक\nक\nअ\n", out)
}

func TestSortCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("भवति\nअस्ति\nगच्छति\n"), 0o644))

	out, err := runApp(t, "", "sort", path)
	require.NoError(t, err)
	assert.Equal(t, "अस्ति\nगच्छति\nभवति\n", out)

	_, err = runApp(t, "", "sort", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = runApp(t, "", "sort", path, path)
	assert.ErrorIs(t, err, ErrUsage)
}

func seedSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.db")
	db, err := database.NewDatabase(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.ReplaceVocabulary([]entities.VocabularyEntry{
		{ID: 1, WordDevanagari: "राम", IAST: "rāma", MeaningPT: "<b>Rama</b>", WordType: entities.WordTypeSubstantive, Gender: "masculine", IsPublished: true},
		{ID: 2, WordDevanagari: "अश्व", IAST: "aśva", MeaningPT: "cavalo", WordType: entities.WordTypeSubstantive, Gender: "masculine", IsPublished: true},
		{ID: 3, WordDevanagari: "च", IAST: "ca", MeaningPT: "e", WordType: entities.WordTypeIndeclinable, IsPublished: true},
	}))
	return path
}

func TestVocabularyCommand_Offline(t *testing.T) {
	t.Setenv("DATABASE_PATH", seedSnapshot(t))

	out, err := runApp(t, "", "vocabulary", "--offline")
	require.NoError(t, err)

	ashva := strings.Index(out, "अश्व")
	ca := strings.Index(out, "च")
	rama := strings.Index(out, "राम")
	require.True(t, ashva >= 0 && ca >= 0 && rama >= 0, out)
	assert.Less(t, ashva, ca)
	assert.Less(t, ca, rama)

	assert.Contains(t, out, "Translation")
	assert.Contains(t, out, "ind.")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "3 of 3 entries (from local snapshot)")
}

func TestVocabularyCommand_SearchAndLimit(t *testing.T) {
	t.Setenv("DATABASE_PATH", seedSnapshot(t))

	out, err := runApp(t, "", "vocabulary", "--offline", "--search", "asva")
	require.NoError(t, err)
	assert.Contains(t, out, "अश्व")
	assert.NotContains(t, out, "राम")
	assert.Contains(t, out, "1 of 1 entries")

	out, err = runApp(t, "", "vocabulary", "--offline", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2 of 3 entries")

	_, err = runApp(t, "", "vocabulary", "--offline", "--limit", "-1")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestSyncCommand(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"meta":{"pagination":{"page":1,"pageSize":100,"pageCount":0,"total":0}}}`))
	}))
	defer server.Close()

	dbPath := filepath.Join(t.TempDir(), "snapshot.db")
	t.Setenv("DATABASE_PATH", dbPath)
	t.Setenv("CMS_URL", server.URL)

	out, err := runApp(t, "", "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "vocabulary")
	assert.Contains(t, out, "shabdas")
	assert.Contains(t, out, "refreshed")
	assert.NotEmpty(t, paths)

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()
	run, err := db.LastSuccessfulSyncRun()
	require.NoError(t, err)
	assert.Equal(t, "cli", run.Trigger)
}

func TestSyncCommand_CMSRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "snapshot.db"))
	t.Setenv("CMS_URL", server.URL)

	_, err := runApp(t, "", "sync")
	assert.ErrorContains(t, err, server.URL)
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "GoVersion")
}
