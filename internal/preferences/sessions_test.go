package preferences

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/vyakarana/internal/config"
	"github.com/mrlokans/vyakarana/internal/database"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlDB, err := db.SQLDB()
	require.NoError(t, err)

	m, err := NewManager(sqlDB, config.Session{Lifetime: time.Hour})
	require.NoError(t, err)
	return m
}

func setupRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.LoadSave())
	r.GET("/size", func(c *gin.Context) {
		if raw := c.Query("set"); raw != "" {
			size, _ := strconv.Atoi(raw)
			m.SetVocabularyPageSize(c.Request.Context(), size)
		}
		c.String(http.StatusOK, strconv.Itoa(m.VocabularyPageSize(c.Request.Context())))
	})
	return r
}

func TestNewManager_CookieSettings(t *testing.T) {
	m := setupManager(t)

	assert.Equal(t, "preferences", m.Cookie.Name)
	assert.True(t, m.Cookie.HttpOnly)
	assert.False(t, m.Cookie.Secure)
	assert.Equal(t, time.Hour, m.Lifetime)
}

func TestVocabularyPageSize_PersistsAcrossRequests(t *testing.T) {
	router := setupRouter(setupManager(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/size", nil))
	assert.Equal(t, "0", w.Body.String())
	assert.Empty(t, w.Result().Cookies(), "unmodified session sets no cookie")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/size?set=25", nil))
	assert.Equal(t, "25", w.Body.String())
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "preferences", cookies[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/size", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "25", w.Body.String())
}

func TestSetVocabularyPageSize_IgnoresNonPositive(t *testing.T) {
	router := setupRouter(setupManager(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/size?set=-5", nil))
	assert.Equal(t, "0", w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}
