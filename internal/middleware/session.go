package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"topo-schedule/internal/services"
)

// SessionHeader carries the session id in both directions.
const SessionHeader = "X-Session-ID"

type contextKey string

const ContextSessionKey contextKey = "session"

type SessionMiddleware struct {
	store *services.SessionStore
	logr  *zap.Logger
}

func NewSessionMiddleware(store *services.SessionStore, logr *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{store: store, logr: logr}
}

// Sessions resolves the caller's session from SessionHeader, starting a new one
// when the header is missing or the session has expired, and echoes the id back.
func (m *SessionMiddleware) Sessions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		sess, ok := m.store.Get(id)
		if !ok {
			if id != "" {
				m.logr.Warn("unknown or expired session, starting a new one", zap.String("session_id", id))
			}
			sess = m.store.Create()
		}

		w.Header().Set(SessionHeader, sess.ID)
		ctx := context.WithValue(r.Context(), ContextSessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFrom returns the session attached by Sessions.
func SessionFrom(ctx context.Context) (*services.Session, bool) {
	sess, ok := ctx.Value(ContextSessionKey).(*services.Session)
	return sess, ok
}
