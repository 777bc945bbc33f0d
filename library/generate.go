package library

import (
	"context"

	"github.com/andrewpaige1/nodebook-local/models"
	"github.com/andrewpaige1/nodebook-local/naming"
)

// titleLayout renders the neutral default title, e.g. "8/9/2025 02:31 PM".
const titleLayout = "1/2/2006 03:04 PM"

// GenerateRequest is the input of GenerateSet.
type GenerateRequest struct {
	Folder string `json:"folder"`
	Text   string `json:"text"`
	Topic  string `json:"topic,omitempty"`
}

// Usage reports how much of the card quota is used.
type Usage struct {
	Generated int `json:"generated"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

// Usage returns the current quota state.
func (l *Library) Usage(ctx context.Context) Usage {
	generated := l.usage.Get(ctx)
	return Usage{
		Generated: generated,
		Limit:     l.limit,
		Remaining: max(l.limit-generated, 0),
	}
}

// ResetUsage forgets the generated card count.
func (l *Library) ResetUsage(ctx context.Context) {
	l.writes.Lock()
	defer l.writes.Unlock()
	l.usage.Reset(ctx)
	l.log.Info().Msg("Usage counter reset")
}

// GenerateSet turns req.Text into a new card set saved in req.Folder.
//
// Only one generation runs at a time per Library; a concurrent call fails
// with ErrGenerationInProgress instead of waiting. The quota is checked
// before the generator is called, and usage grows by the number of cards
// saved. The generator runs outside the write lock.
func (l *Library) GenerateSet(ctx context.Context, req GenerateRequest) (models.CardSet, error) {
	if !l.inflight.TryAcquire(1) {
		return models.CardSet{}, ErrGenerationInProgress
	}
	defer l.inflight.Release(1)

	if naming.NormalizeName(req.Text) == "" {
		return models.CardSet{}, ErrEmptyInput
	}
	if used := l.usage.Get(ctx); used >= l.limit {
		l.log.Info().Int("used", used).Int("limit", l.limit).Msg("Card limit reached")
		return models.CardSet{}, ErrQuotaExceeded
	}

	cards := l.generator.Generate(ctx, req.Text)
	if len(cards) == 0 {
		return models.CardSet{}, ErrNothingGenerated
	}

	l.writes.Lock()
	defer l.writes.Unlock()

	folder := folderOrDefault(req.Folder)
	now := l.now()

	base := "Flashcards – " + now.Format(titleLayout)
	if topic := naming.SanitizePromptTopic(req.Topic); topic != "" {
		base = naming.SuggestSetName(cards, topic)
	}

	id, err := l.newID(now)
	if err != nil {
		return models.CardSet{}, err
	}
	set := models.CardSet{
		ID:        id,
		Folder:    folder,
		Title:     fitName(base, l.titlesIn(ctx, folder, "")),
		Cards:     cards,
		CreatedAt: now.UTC(),
	}
	l.store.Save(ctx, set)
	l.usage.Increment(ctx, len(cards))

	l.log.Info().
		Str("folder", folder).
		Str("id", set.ID.String()).
		Int("cards", len(cards)).
		Msg("Generated flashcard set")
	return set, nil
}
