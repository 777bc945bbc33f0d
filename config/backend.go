package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/nodebook-local/storage"
)

// OpenBackend builds the storage backend selected by env, wrapped in an LRU
// cache when CacheSize is positive.
func OpenBackend(env Environment, logger zerolog.Logger) (storage.Backend, error) {
	var (
		backend storage.Backend
		err     error
	)
	switch env.StorageBackend {
	case BackendMemory:
		backend = storage.NewMemoryBackend()
	case BackendFile:
		backend, err = storage.NewFileBackend(env.StoragePath)
	case BackendSQLite, BackendPostgres:
		db, connErr := Connect(env)
		if connErr != nil {
			return nil, connErr
		}
		backend, err = storage.NewDBBackend(db)
	default:
		return nil, fmt.Errorf("config: unknown STORAGE_BACKEND %q", env.StorageBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s backend: %w", env.StorageBackend, err)
	}

	if env.CacheSize > 0 {
		backend, err = storage.NewCachedBackend(backend, env.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("config: cache: %w", err)
		}
	}
	logger.Info().
		Str("backend", env.StorageBackend).
		Str("path", env.StoragePath).
		Int("cache_size", env.CacheSize).
		Msg("Storage ready")
	return backend, nil
}
