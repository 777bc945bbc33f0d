package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// SetID identifies a CardSet. It is supplied by the caller at creation time.
type SetID string

// UnmarshalJSON accepts both strings and the numeric millisecond ids written
// by older versions of the app.
func (id *SetID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SetID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = SetID(n.String())
	return nil
}

func (id SetID) String() string { return string(id) }

// CardSet is one saved flashcard collection. Folder is a plain label; the
// set of folders is derived from the sets that reference them.
type CardSet struct {
	ID        SetID     `json:"id"`
	Folder    string    `json:"folder"`
	Title     string    `json:"title"`
	Cards     []Card    `json:"cards"`
	CreatedAt time.Time `json:"createdAt"`
}

// CardCount returns the number of cards in the set.
func (s CardSet) CardCount() int {
	return len(s.Cards)
}
