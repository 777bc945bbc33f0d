package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// exerciseBackend runs the contract every Backend must satisfy.
func exerciseBackend(t *testing.T, backend Backend) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := backend.Get(ctx, CollectionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Set(ctx, CollectionKey, `[]`))
	require.NoError(t, backend.Set(ctx, CollectionKey, `[{"id":"1"}]`))
	value, ok, err := backend.Get(ctx, CollectionKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)

	require.NoError(t, backend.Set(ctx, UsageKey, "12"))
	require.NoError(t, backend.Remove(ctx, CollectionKey))
	require.NoError(t, backend.Remove(ctx, CollectionKey), "removing twice is fine")

	_, ok, err = backend.Get(ctx, CollectionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err = backend.Get(ctx, UsageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", value)
}

func TestMemoryBackend(t *testing.T) {
	exerciseBackend(t, NewMemoryBackend())
}

func TestFileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "slots")
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	exerciseBackend(t, backend)

	// A second handle on the same directory sees the same data.
	reopened, err := NewFileBackend(dir)
	require.NoError(t, err)
	value, ok, err := reopened.Get(context.Background(), UsageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", value)
}

func TestFileBackendCanceledContext(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, backend.Set(ctx, UsageKey, "1"), context.Canceled)
}

func TestDBBackend(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "nodebook.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	backend, err := NewDBBackend(db)
	require.NoError(t, err)
	exerciseBackend(t, backend)

	store := NewStore(backend, zerolog.Nop())
	ctx := context.Background()
	store.Save(ctx, testSet("1", "Bio", "Cells"))
	store.Save(ctx, testSet("2", "Chem", "Atoms"))
	assert.Equal(t, []string{"Bio", "Chem"}, store.LoadFolders(ctx))
}

type countingBackend struct {
	*MemoryBackend
	gets    int
	failSet bool
}

func (c *countingBackend) Get(ctx context.Context, key string) (string, bool, error) {
	c.gets++
	return c.MemoryBackend.Get(ctx, key)
}

func (c *countingBackend) Set(ctx context.Context, key, value string) error {
	if c.failSet {
		return errors.New("write failed")
	}
	return c.MemoryBackend.Set(ctx, key, value)
}

func TestCachedBackend(t *testing.T) {
	exerciseBackend(t, mustCached(t, NewMemoryBackend()))

	ctx := context.Background()
	source := &countingBackend{MemoryBackend: NewMemoryBackend()}
	cached := mustCached(t, source)

	require.NoError(t, cached.Set(ctx, UsageKey, "3"))
	for range 3 {
		value, ok, err := cached.Get(ctx, UsageKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "3", value)
	}
	assert.Equal(t, 0, source.gets, "reads after a write are served from cache")

	source.failSet = true
	assert.Error(t, cached.Set(ctx, UsageKey, "4"))
	value, _, err := cached.Get(ctx, UsageKey)
	require.NoError(t, err)
	assert.Equal(t, "3", value, "failed writes are not cached")
	assert.Equal(t, 1, source.gets)
}

func mustCached(t *testing.T, next Backend) *CachedBackend {
	t.Helper()
	cached, err := NewCachedBackend(next, 8)
	require.NoError(t, err)
	return cached
}

// gatedBackend pauses the first Get after it has read from the source.
type gatedBackend struct {
	*MemoryBackend
	paused  atomic.Bool
	read    chan struct{}
	release chan struct{}
}

func (g *gatedBackend) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := g.MemoryBackend.Get(ctx, key)
	if g.paused.CompareAndSwap(false, true) {
		close(g.read)
		<-g.release
	}
	return value, ok, err
}

func TestCachedBackendSlowReadKeepsNewerWrite(t *testing.T) {
	ctx := context.Background()
	source := &gatedBackend{
		MemoryBackend: NewMemoryBackend(),
		read:          make(chan struct{}),
		release:       make(chan struct{}),
	}
	store := NewStore(mustCached(t, source), zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.LoadAll(ctx)
	}()
	<-source.read

	store.Save(ctx, testSet("1", "Bio", "Cells"))
	close(source.release)
	<-done

	require.Len(t, store.LoadAll(ctx), 1, "the stale read must not replace the saved blob")

	store.Save(ctx, testSet("2", "Bio", "Genes"))
	raw, ok, err := source.MemoryBackend.Get(ctx, CollectionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"id":"1"`)
	assert.Contains(t, raw, `"id":"2"`)
}
