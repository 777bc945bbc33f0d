// Package generate turns pasted text into flashcards with a language model.
//
// A Generator never fails loudly: any problem (network, quota, malformed
// model output) yields an empty slice and the caller only sees that nothing
// was generated.
package generate

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/andrewpaige1/nodebook-local/models"
)

// Generator produces flashcards for a block of text.
type Generator interface {
	Generate(ctx context.Context, text string) []models.Card
}

// Func adapts a plain function to Generator.
type Func func(ctx context.Context, text string) []models.Card

func (f Func) Generate(ctx context.Context, text string) []models.Card {
	return f(ctx, text)
}

// Disabled is the generator used when no model is configured.
var Disabled Generator = Func(func(context.Context, string) []models.Card {
	return []models.Card{}
})

var (
	codeFence = regexp.MustCompile("```json|```")
	jsonArray = regexp.MustCompile(`(?s)\[.*\]`)
)

// ParseCards extracts the flashcards from a model reply. It tolerates code
// fences and prose around the JSON array and drops cards missing a term or a
// definition.
func ParseCards(raw string) []models.Card {
	out := strings.TrimSpace(codeFence.ReplaceAllString(raw, ""))
	if m := jsonArray.FindString(out); m != "" {
		out = m
	}

	var parsed []json.RawMessage
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return []models.Card{}
	}

	cards := []models.Card{}
	for _, item := range parsed {
		var card models.Card
		if err := json.Unmarshal(item, &card); err != nil {
			continue
		}
		if card.Valid() {
			cards = append(cards, card)
		}
	}
	return cards
}
