package models

import "strings"

// Card is a single term/definition pair
type Card struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Valid reports whether both sides of the card carry text.
func (c Card) Valid() bool {
	return strings.TrimSpace(c.Term) != "" && strings.TrimSpace(c.Definition) != ""
}
