package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls   atomic.Int32
	entries []Entry
	err     error
	delay   time.Duration
}

func (s *countingSource) Load(ctx context.Context) ([]Entry, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.entries, s.err
}

func TestCache_TTL(t *testing.T) {
	src := &countingSource{entries: []Entry{{Name: "Hulk", ID: "1011", SkinID: "1011001", SkinName: "Default"}}}
	c := NewCache(src, time.Minute)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	snap, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Entries, 1)

	_, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.calls.Load())

	now = now.Add(2 * time.Minute)
	_, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.calls.Load())

	c.Invalidate()
	_, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), src.calls.Load())
}

func TestCache_ZeroTTLAlwaysLoads(t *testing.T) {
	src := &countingSource{}
	c := NewCache(src, 0)

	for i := 0; i < 3; i++ {
		_, err := c.Get(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), src.calls.Load())
}

func TestCache_SharedLoad(t *testing.T) {
	src := &countingSource{delay: 50 * time.Millisecond}
	c := NewCache(src, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Get(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
}

func TestCache_Error(t *testing.T) {
	src := &countingSource{err: errors.New("boom")}
	c := NewCache(src, time.Minute)

	_, err := c.Get(context.Background())
	assert.EqualError(t, err, "boom")
}
