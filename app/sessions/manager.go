package sessions

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// DefaultCookieName names the session cookie when none is configured.
const DefaultCookieName = "wacblog_session"

type contextKey struct{}

// Manager is the in-memory session registry.
type Manager struct {
	cookieName string
	logger     *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a registry that tracks visitors by the named cookie.
func NewManager(cookieName string, logger *zap.Logger) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		cookieName: cookieName,
		logger:     logger,
		sessions:   make(map[string]*Session),
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Create registers a fresh session.
func (m *Manager) Create() *Session {
	s := New()
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	m.logger.Debug("session created", zap.String("session", s.ID))
	return s
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Middleware resolves the visitor's session from the cookie, creating one
// (and setting the cookie) when the cookie is missing or unknown.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *Session
		if c, err := r.Cookie(m.cookieName); err == nil {
			sess, _ = m.Get(c.Value)
		}
		if sess == nil {
			sess = m.Create()
			http.SetCookie(w, &http.Cookie{
				Name:     m.cookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// WithSession returns a context carrying sess.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session attached by Middleware, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
