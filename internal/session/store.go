package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store is the concurrency-safe mapping from user id to session. Different
// users may be served concurrently; mutation of a single session is not
// synchronized here and relies on per-user serialization at the transport.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the session for a user, if any.
func (s *Store) Get(userID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Reset discards any existing session for the user and installs a fresh one.
func (s *Store) Reset(userID int64) *Session {
	sess := newSession(userID)
	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()
	return sess
}

// GetOrCreate returns the user's session, creating a fresh one on first
// contact.
func (s *Store) GetOrCreate(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := newSession(userID)
	s.sessions[userID] = sess
	return sess
}

// Delete removes the user's session. The terminal transition after report
// delivery.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle removes sessions whose last activity is older than ttl and
// returns how many were removed. Abandoned sessions would otherwise leak for
// the life of the process.
func (s *Store) EvictIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for userID, sess := range s.sessions {
		if sess.LastActive.Before(cutoff) {
			delete(s.sessions, userID)
			evicted++
		}
	}
	return evicted
}

// RunJanitor evicts idle sessions on the given interval until the context is
// cancelled.
func (s *Store) RunJanitor(ctx context.Context, interval, ttl time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := s.EvictIdle(ttl); evicted > 0 {
				log.Info("evicted idle sessions", zap.Int("count", evicted))
			}
		}
	}
}
