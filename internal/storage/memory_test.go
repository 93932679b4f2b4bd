package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	_, err := s.Get(ctx, "v1", "app-theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "v1", "app-theme", []byte("light")))
	got, err := s.Get(ctx, "v1", "app-theme")
	require.NoError(t, err)
	assert.Equal(t, "light", string(got))

	_, err = s.Get(ctx, "v2", "app-theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "v1", "app-theme"))
	_, err = s.Get(ctx, "v1", "app-theme")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	buf := []byte("dark")
	require.NoError(t, s.Set(ctx, "v", "k", buf))
	buf[0] = 'X'

	got, _ := s.Get(ctx, "v", "k")
	assert.Equal(t, "dark", string(got))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Hour)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "v", "k", []byte("x")))
	now = now.Add(30 * time.Minute)
	_, err := s.Get(ctx, "v", "k")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = s.Get(ctx, "v", "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Purge())
	assert.Empty(t, s.data)
}

func TestMemoryStoreConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "v", "session-user", []byte("u"))
			_, _ = s.Get(ctx, "v", "session-user")
		}()
	}
	wg.Wait()
	got, err := s.Get(ctx, "v", "session-user")
	require.NoError(t, err)
	assert.Equal(t, "u", string(got))
}
