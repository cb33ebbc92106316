package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Session is the explicit per-operator state: one element registry and one run
// state. Its mutex makes every request against it a single atomic step.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	registry *ElementRegistry
	run      RunState
}

// NewSession creates a session with tables from gen.
func NewSession(gen ElementGenerator) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		registry:  NewElementRegistry(gen),
	}
}

// Do runs fn with exclusive access to the session state.
func (s *Session) Do(fn func(reg *ElementRegistry, run *RunState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.registry, &s.run)
}

// SessionStore keeps sessions in memory with a sliding expiry.
type SessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
	logr  *zap.Logger

	// guards gen, which is not safe for concurrent use
	genMu sync.Mutex
	gen   ElementGenerator
}

func NewSessionStore(gen ElementGenerator, ttl, cleanupInterval time.Duration, logr *zap.Logger) *SessionStore {
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(id string, _ interface{}) {
		logr.Info("session evicted", zap.String("session_id", id))
	})
	return &SessionStore{cache: c, ttl: ttl, logr: logr, gen: gen}
}

// Create starts a new session and stores it.
func (st *SessionStore) Create() *Session {
	st.genMu.Lock()
	sess := NewSession(st.gen)
	st.genMu.Unlock()

	st.cache.Set(sess.ID, sess, st.ttl)
	st.logr.Info("session created", zap.String("session_id", sess.ID))
	return sess
}

// Get returns the session for id and extends its expiry.
func (st *SessionStore) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := st.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess := v.(*Session)
	st.cache.Set(id, sess, st.ttl)
	return sess, true
}

// Delete ends a session.
func (st *SessionStore) Delete(id string) {
	st.cache.Delete(id)
}

// Count returns the number of live sessions.
func (st *SessionStore) Count() int {
	return st.cache.ItemCount()
}
