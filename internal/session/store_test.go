package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	store := NewMemoryStore()

	sess := store.Set(42, "alice123")
	require.NotEmpty(t, sess.SessionID)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, "alice123", sess.Username)

	got, ok := store.Get(sess.SessionID)
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestGet_UnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("no-such-session")
	assert.False(t, ok)
}

func TestClear_RemovesSession(t *testing.T) {
	store := NewMemoryStore()

	sess := store.Set(1, "bob")
	store.Clear(sess.SessionID)

	_, ok := store.Get(sess.SessionID)
	assert.False(t, ok)
}

func TestClear_UnknownIDIsNoOp(t *testing.T) {
	store := NewMemoryStore()
	store.Clear("never-existed")
}

func TestClearExpired(t *testing.T) {
	store := NewMemoryStore()

	stale := store.Set(1, "alice123")
	fresh := store.Set(2, "bob456")

	removed := store.ClearExpired(time.Hour)
	assert.Zero(t, removed)

	removed = store.ClearExpired(-time.Second)
	assert.Equal(t, 2, removed)

	_, ok := store.Get(stale.SessionID)
	assert.False(t, ok)
	_, ok = store.Get(fresh.SessionID)
	assert.False(t, ok)
}

func TestConcurrentLogins_DoNotOverwriteEachOther(t *testing.T) {
	store := NewMemoryStore()

	sessA := store.Set(1, "alice123")
	sessB := store.Set(2, "bob456")

	require.NotEqual(t, sessA.SessionID, sessB.SessionID)

	gotA, okA := store.Get(sessA.SessionID)
	gotB, okB := store.Get(sessB.SessionID)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, "alice123", gotA.Username)
	assert.Equal(t, "bob456", gotB.Username)
}

func TestConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			sess := store.Set(n, "user")
			_, _ = store.Get(sess.SessionID)
			store.Clear(sess.SessionID)
		}(int64(i))
	}
	wg.Wait()
}
