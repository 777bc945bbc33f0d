package naming

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/andrewpaige1/nodebook-local/models"
)

// FallbackSetName is used when nothing better can be derived from the cards.
const FallbackSetName = "Flashcards"

var stopwords = map[string]bool{
	"the": true, "and": true, "a": true, "an": true, "of": true, "to": true,
	"in": true, "for": true, "on": true, "with": true, "by": true, "is": true,
	"are": true, "be": true, "as": true, "at": true, "from": true, "that": true,
	"this": true, "it": true, "its": true, "into": true, "about": true, "or": true,
	"vs": true, "vs.": true, "your": true, "you": true, "we": true, "our": true,
}

var (
	quoteChars   = regexp.MustCompile("[“”\"'‘’]")
	emojiChars   = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}]`)
	topicPunct   = regexp.MustCompile(`[^\w\s\-:&/]`)
	topicLead    = regexp.MustCompile(`(?i)(?:about|on|topic|subject|regarding)\s*[:\-]\s*(.+)$`)
	topicTrailer = regexp.MustCompile(`^\s*(.+?)\s*:\s*$`)
	keywordPunct = regexp.MustCompile(`[.,!?:;()\[\]{}"'\-_]`)

	lower = cases.Lower(language.Und)
)

// TitleCase lowercases s and capitalizes the first word plus every word
// longer than three letters.
func TitleCase(s string) string {
	words := strings.Fields(lower.String(NormalizeName(s)))
	for i, w := range words {
		if i == 0 || utf8.RuneCountInString(w) > 3 {
			r, size := utf8.DecodeRuneInString(w)
			words[i] = string(unicode.ToUpper(r)) + w[size:]
		}
	}
	return strings.Join(words, " ")
}

// SanitizePromptTopic turns free text such as `Quiz me about: "Cell Biology" 🧬`
// into a short display topic ("Cell Biology").
func SanitizePromptTopic(s string) string {
	if s == "" {
		return ""
	}
	t := quoteChars.ReplaceAllString(s, "")
	t = emojiChars.ReplaceAllString(t, "")
	t = topicPunct.ReplaceAllString(t, " ")
	t = NormalizeName(t)

	if m := topicLead.FindStringSubmatch(t); m != nil && m[1] != "" {
		t = strings.TrimSpace(m[1])
	} else if m := topicTrailer.FindStringSubmatch(t); m != nil && m[1] != "" {
		t = strings.TrimSpace(m[1])
	}

	return TitleCase(Truncate(NormalizeName(t), MaxNameLength))
}

// SuggestSetName proposes a set title. An explicit topic of at least three
// characters wins; otherwise the most frequent keywords of the first 30
// cards are used.
func SuggestSetName(cards []models.Card, topic string) string {
	if t := NormalizeName(topic); utf8.RuneCountInString(t) >= 3 {
		return TitleCase(Truncate(t, MaxNameLength))
	}

	sample := cards[:min(len(cards), 30)]
	var b strings.Builder
	for _, c := range sample {
		b.WriteString(c.Term)
		b.WriteByte(' ')
		b.WriteString(c.Definition)
		b.WriteByte(' ')
	}
	text := keywordPunct.ReplaceAllString(lower.String(b.String()), " ")

	freq := make(map[string]int)
	var order []string
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) < 3 || stopwords[w] {
			continue
		}
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}
	if len(order) == 0 {
		return FallbackSetName
	}

	slices.SortStableFunc(order, func(a, b string) int {
		if freq[a] != freq[b] {
			return freq[b] - freq[a]
		}
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})

	var picked []string
	for _, w := range order {
		if len(picked) >= 4 {
			break
		}
		overlaps := slices.ContainsFunc(picked, func(p string) bool {
			return strings.Contains(w, p) || strings.Contains(p, w)
		})
		if !overlaps {
			picked = append(picked, w)
		}
	}

	raw := FallbackSetName
	switch {
	case len(picked) >= 2:
		raw = strings.Join(picked[:min(len(picked), 3)], " ")
	case len(sample) > 0 && sample[0].Term != "":
		raw = sample[0].Term
	}
	return TitleCase(Truncate(NormalizeName(raw), MaxNameLength))
}
