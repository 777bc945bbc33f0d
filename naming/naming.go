// Package naming normalizes user supplied folder and set names and picks the
// next collision-free name within a scope. Every function here is pure and
// total: any string input yields a usable name.
//
// The allocator never caps the length of what it returns. Callers that
// display names truncate with Truncate after allocating.
package naming

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// Untitled replaces an empty base name.
	Untitled = "Untitled"

	// DefaultFolder is the folder every set falls back to.
	DefaultFolder = "Default"

	// MaxNameLength is the longest name, in runes, the app displays.
	MaxNameLength = 60
)

var (
	whitespaceRun   = regexp.MustCompile(`[\s\v\p{Z}\x{85}\x{FEFF}]+`)
	defaultNumbered = regexp.MustCompile(`^Default\s+(\d+)$`)
)

// NormalizeName collapses every whitespace run to a single space and trims
// both ends.
func NormalizeName(raw string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
}

// NextAvailableName returns base, normalized, when no existing name matches it
// case-insensitively. Otherwise it returns base followed by one more than the
// highest counter already used, where "base" itself counts as 1 and
// "base N" counts as N. Names that merely start with base ("Biology Basics"
// for "Biology") are not counted.
func NextAvailableName(base string, existing []string) string {
	b := NormalizeName(base)
	if b == "" {
		b = Untitled
	}

	taken := false
	for _, name := range existing {
		if strings.EqualFold(NormalizeName(name), b) {
			taken = true
			break
		}
	}
	if !taken {
		return b
	}

	pattern := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(b) + `(?:\s+(\d+))?$`)
	highest := 1
	for _, name := range existing {
		m := pattern.FindStringSubmatch(NormalizeName(name))
		if m == nil {
			continue
		}
		n := 1
		if m[1] != "" {
			v, err := strconv.Atoi(m[1])
			if err != nil || v == math.MaxInt {
				continue
			}
			n = v
		}
		highest = max(highest, n)
	}
	return fmt.Sprintf("%s %d", b, highest+1)
}

// NextDefaultFolderName suggests the next "Default N" folder name. An empty
// scope gets plain "Default".
func NextDefaultFolderName(existing []string) string {
	if len(existing) == 0 {
		return DefaultFolder
	}

	highest := 0
	for _, name := range existing {
		if !strings.HasPrefix(name, DefaultFolder) {
			continue
		}
		n := 1
		if m := defaultNumbered.FindStringSubmatch(name); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v < math.MaxInt {
				n = v
			}
		}
		highest = max(highest, n)
	}
	if highest == 0 {
		return DefaultFolder + " 2"
	}
	return fmt.Sprintf("%s %d", DefaultFolder, highest+1)
}

// Truncate shortens s to at most n runes and trims any trailing whitespace
// left by the cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n]))
}
