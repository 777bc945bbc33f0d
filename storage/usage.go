package storage

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// UsageCounter is the durable count of cards generated. It enforces no
// quota; callers compare Get against their own limit.
//
// Increment is a plain read-add-write and is not safe against concurrent
// increments.
type UsageCounter struct {
	backend Backend
	log     zerolog.Logger
}

func NewUsageCounter(backend Backend, logger zerolog.Logger) *UsageCounter {
	return &UsageCounter{
		backend: backend,
		log:     logger.With().Str("component", "usage").Logger(),
	}
}

// Get returns the stored count, or 0 when it is missing or unreadable.
func (u *UsageCounter) Get(ctx context.Context) int {
	raw, present, err := u.backend.Get(ctx, UsageKey)
	if err != nil {
		u.log.Error().Err(err).Msg("Error reading usage count")
		return 0
	}
	if !present {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		u.log.Warn().Str("value", raw).Msg("Ignoring unparsable usage count")
		return 0
	}
	return n
}

// Increment adds amount to the stored count. Negative amounts are ignored.
func (u *UsageCounter) Increment(ctx context.Context, amount int) {
	if amount < 0 {
		u.log.Warn().Int("amount", amount).Msg("Refusing negative usage increment")
		return
	}
	total := u.Get(ctx) + amount
	if err := u.backend.Set(ctx, UsageKey, strconv.Itoa(total)); err != nil {
		u.log.Error().Err(err).Msg("Error saving usage count")
	}
}

// Reset forgets the stored count; Get returns 0 afterwards.
func (u *UsageCounter) Reset(ctx context.Context) {
	if err := u.backend.Remove(ctx, UsageKey); err != nil {
		u.log.Error().Err(err).Msg("Error resetting usage count")
	}
}
