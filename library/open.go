package library

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/nodebook-local/config"
	"github.com/andrewpaige1/nodebook-local/generate"
	"github.com/andrewpaige1/nodebook-local/storage"
)

// Open builds a Library from env: the configured storage backend, the usage
// counter on the same backend and a Gemini generator when an API key is set.
func Open(ctx context.Context, env config.Environment, logger zerolog.Logger) (*Library, error) {
	backend, err := config.OpenBackend(env, logger)
	if err != nil {
		return nil, err
	}

	var generator generate.Generator = generate.Disabled
	if env.GeminiAPIKey != "" {
		gemini, err := generate.NewGemini(ctx, env.GeminiAPIKey, env.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("library: gemini client: %w", err)
		}
		generator = gemini
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, flashcard generation is disabled")
	}

	return New(
		storage.NewStore(backend, logger),
		storage.NewUsageCounter(backend, logger),
		generator,
		WithCardLimit(env.CardLimit),
		WithLogger(logger),
	), nil
}
