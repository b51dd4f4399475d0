package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrCreate(t *testing.T) {
	store := NewStore()

	first := store.GetOrCreate(1)
	second := store.GetOrCreate(1)
	assert.Same(t, first, second)

	other := store.GetOrCreate(2)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, 2, store.Len())
}

func TestStore_ResetDiscardsState(t *testing.T) {
	store := NewStore()

	sess := store.GetOrCreate(1)
	sess.Questions = []string{"1. Q1"}

	fresh := store.Reset(1)
	assert.Empty(t, fresh.Questions)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	store.GetOrCreate(1)

	store.Delete(1)
	_, ok := store.Get(1)
	assert.False(t, ok)

	// Deleting a missing entry is harmless.
	store.Delete(1)
}

func TestStore_EvictIdle(t *testing.T) {
	store := NewStore()

	stale := store.GetOrCreate(1)
	stale.LastActive = time.Now().Add(-2 * time.Hour)
	fresh := store.GetOrCreate(2)
	fresh.LastActive = time.Now()

	evicted := store.EvictIdle(time.Hour)
	assert.Equal(t, 1, evicted)

	_, ok := store.Get(1)
	assert.False(t, ok)
	_, ok = store.Get(2)
	assert.True(t, ok)
}

func TestStore_ConcurrentAccessAcrossUsers(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			sess := store.GetOrCreate(userID)
			require.NotNil(t, sess)
			_, _ = store.Get(userID)
			store.Delete(userID)
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 0, store.Len())
}
