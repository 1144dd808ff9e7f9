package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, ok := m.Get(ctx, "missing")
	assert.False(t, ok)

	m.Set(ctx, "key", []byte("payload"), time.Minute)

	payload, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), payload)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "key", []byte("payload"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := m.Get(ctx, "key")
	assert.False(t, ok, "entry past its TTL must read as a miss")
}

func TestMemoryCopiesPayloads(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	original := []byte("payload")
	m.Set(ctx, "key", original, time.Minute)
	original[0] = 'X'

	payload, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), payload, "stored payload must not alias the caller's slice")

	payload[0] = 'Y'
	again, _ := m.Get(ctx, "key")
	assert.Equal(t, []byte("payload"), again, "returned payload must not alias the stored copy")
}

func TestMemoryOverwriteRefreshesTTL(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "key", []byte("old"), 10*time.Millisecond)
	m.Set(ctx, "key", []byte("new"), time.Minute)
	time.Sleep(20 * time.Millisecond)

	payload, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), payload)
}
