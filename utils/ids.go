package utils

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/nodebook-local/models"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewSetID returns an id that sorts by creation time: the creation time in
// milliseconds followed by a short random suffix.
func NewSetID(now time.Time) (models.SetID, error) {
	suffix, err := gonanoid.Generate(idAlphabet, 8)
	if err != nil {
		return "", err
	}
	return models.SetID(strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix), nil
}
