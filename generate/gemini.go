package generate

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	genai "google.golang.org/genai"

	"github.com/andrewpaige1/nodebook-local/models"
)

const (
	// DefaultModel is used when no model name is configured.
	DefaultModel = "gemini-2.5-flash"

	systemPrompt = "You are an assistant that creates educational flashcards."
	promptHeader = `Create concise flashcards from the following text.
Return ONLY valid JSON (no code fences, no extra text).
Format: [{"term": "...", "definition": "..."}, ...].

Text:
`
)

// Gemini generates flashcards with the Gemini API.
type Gemini struct {
	cli   *genai.Client
	model string
	log   zerolog.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, logger zerolog.Logger) (*Gemini, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{
		cli:   cli,
		model: model,
		log:   logger.With().Str("component", "generate").Str("model", model).Logger(),
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, text string) []models.Card {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: promptHeader + text}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
			Temperature:       genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		g.log.Error().Err(err).Msg("Error generating flashcards")
		return []models.Card{}
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		g.log.Warn().Msg("Model returned no candidates")
		return []models.Card{}
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	cards := ParseCards(b.String())
	if len(cards) == 0 {
		g.log.Warn().Str("raw", b.String()).Msg("Failed to parse model response as flashcards")
	}
	return cards
}
