// Package session implements the server-side session table that maps an
// opaque, client-presented session identifier to the authenticated account.
//
// Each successful login opens its own entry, so concurrent users never
// overwrite one another's identity. Logout removes the entry, which is the
// only invalidation mechanism besides the expiry carried by the signed token
// wrapping the session identifier.
package session

//go:generate mockgen -source=store.go -destination=../mock/session_store_mock.go -package=mock

import (
	"sync"
	"time"

	"github.com/dmarrero/jobtrack/models"
	"github.com/google/uuid"
)

// Store is the contract of the session table used by the authentication
// layer. Implementations must be safe for concurrent use.
type Store interface {
	// Set opens a new session for the given account identity and returns
	// the generated session identifier.
	Set(userID int64, username string) models.Session

	// Get looks up the session with the given identifier. The second
	// return value is false when no such session exists; callers must
	// treat that as an unauthenticated request.
	Get(sessionID string) (models.Session, bool)

	// Clear removes the session with the given identifier. Clearing an
	// unknown identifier is a no-op, which makes logout idempotent.
	Clear(sessionID string)

	// ClearExpired removes every session older than maxAge and reports how
	// many were removed. The tokens wrapping those identifiers have already
	// expired, so the entries are unreachable garbage.
	ClearExpired(maxAge time.Duration) int
}

// memoryStore is the in-memory implementation of [Store]: a plain map keyed
// by session identifier and guarded by an RWMutex. Sessions live in process
// memory; a restart logs everyone out.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemoryStore constructs an empty in-memory session [Store].
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]models.Session),
	}
}

func (s *memoryStore) Set(userID int64, username string) models.Session {
	sess := models.Session{
		SessionID: newSessionID(),
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.SessionID] = sess
	s.mu.Unlock()

	return sess
}

func (s *memoryStore) Get(sessionID string) (models.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	return sess, ok
}

func (s *memoryStore) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *memoryStore) ClearExpired(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	return removed
}

// newSessionID generates a time-ordered UUID, falling back to a random one
// if the system clock misbehaves.
func newSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
