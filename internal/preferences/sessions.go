// Package preferences keeps per-reader settings in a cookie-backed session
// stored in the snapshot database.
package preferences

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/mrlokans/vyakarana/internal/config"
)

const keyVocabularyPageSize = "vocabulary_page_size"

// Manager wraps scs.SessionManager with reader preference accessors.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates the sessions table if needed and configures the cookie.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime

	sm.Cookie.Name = "preferences"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Persist = true

	return &Manager{SessionManager: sm}, nil
}

// VocabularyPageSize returns the remembered page size, or 0 when unset.
func (m *Manager) VocabularyPageSize(ctx context.Context) int {
	return m.GetInt(ctx, keyVocabularyPageSize)
}

// SetVocabularyPageSize remembers size for later visits. Non-positive sizes
// are ignored.
func (m *Manager) SetVocabularyPageSize(ctx context.Context, size int) {
	if size <= 0 || size == m.VocabularyPageSize(ctx) {
		return
	}
	m.Put(ctx, keyVocabularyPageSize, size)
}
