package storage

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageCounterMonotonic(t *testing.T) {
	ctx := context.Background()
	counter := NewUsageCounter(NewMemoryBackend(), zerolog.Nop())

	counter.Reset(ctx)
	assert.Equal(t, 0, counter.Get(ctx))

	counter.Increment(ctx, 5)
	counter.Increment(ctx, 3)
	assert.Equal(t, 8, counter.Get(ctx))

	counter.Increment(ctx, 0)
	counter.Increment(ctx, -4)
	assert.Equal(t, 8, counter.Get(ctx))

	counter.Reset(ctx)
	assert.Equal(t, 0, counter.Get(ctx))
}

func TestUsageCounterUnparsable(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	counter := NewUsageCounter(backend, zerolog.Nop())

	for _, raw := range []string{"abc", "", "-3", "1.5"} {
		require.NoError(t, backend.Set(ctx, UsageKey, raw))
		assert.Equal(t, 0, counter.Get(ctx), "value %q", raw)
	}

	require.NoError(t, backend.Set(ctx, UsageKey, " 17\n"))
	assert.Equal(t, 17, counter.Get(ctx))

	require.NoError(t, backend.Set(ctx, UsageKey, "garbage"))
	counter.Increment(ctx, 2)
	assert.Equal(t, 2, counter.Get(ctx), "an unreadable count restarts from zero")
}

func TestUsageCounterStorageFaults(t *testing.T) {
	ctx := context.Background()
	counter := NewUsageCounter(failingBackend{}, zerolog.Nop())

	assert.NotPanics(t, func() {
		counter.Increment(ctx, 5)
		counter.Reset(ctx)
	})
	assert.Equal(t, 0, counter.Get(ctx))
}

func TestUsageCounterIndependentOfSets(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := NewStore(backend, zerolog.Nop())
	counter := NewUsageCounter(backend, zerolog.Nop())

	counter.Increment(ctx, 4)
	store.Save(ctx, testSet("1", "Bio", "Cells"))
	store.Clear(ctx)

	assert.Equal(t, 4, counter.Get(ctx))
}
