package generate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewpaige1/nodebook-local/models"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []models.Card
	}{
		{
			name: "bare array",
			raw:  `[{"term":"ATP","definition":"Energy currency"}]`,
			want: []models.Card{{Term: "ATP", Definition: "Energy currency"}},
		},
		{
			name: "code fence",
			raw:  "```json\n[{\"term\":\"DNA\",\"definition\":\"Genetic code\"}]\n```",
			want: []models.Card{{Term: "DNA", Definition: "Genetic code"}},
		},
		{
			name: "prose around the array",
			raw:  "Here you go:\n[{\"term\":\"A\",\"definition\":\"B\"}]\nHope this helps!",
			want: []models.Card{{Term: "A", Definition: "B"}},
		},
		{
			name: "incomplete cards dropped",
			raw:  `[{"term":"A","definition":""},{"term":"","definition":"B"},{"term":"C","definition":"D"},42,{"term":1}]`,
			want: []models.Card{{Term: "C", Definition: "D"}},
		},
		{name: "not json", raw: "I cannot help with that.", want: []models.Card{}},
		{name: "object instead of array", raw: `{"term":"A","definition":"B"}`, want: []models.Card{}},
		{name: "empty", raw: "", want: []models.Card{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCards(tt.raw))
		})
	}
}

func TestDisabledGenerator(t *testing.T) {
	cards := Disabled.Generate(context.Background(), "anything")
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestFunc(t *testing.T) {
	var got string
	gen := Func(func(_ context.Context, text string) []models.Card {
		got = text
		return []models.Card{{Term: "t", Definition: "d"}}
	})
	assert.Len(t, gen.Generate(context.Background(), "notes"), 1)
	assert.Equal(t, "notes", got)
}
