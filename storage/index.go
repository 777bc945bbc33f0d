package storage

import (
	"github.com/andrewpaige1/nodebook-local/models"
	"github.com/andrewpaige1/nodebook-local/naming"
)

// FolderSummary describes one derived folder.
type FolderSummary struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Cards int    `json:"cards"`
}

// FolderOf returns the folder a set is listed under. Sets without a folder
// belong to the default folder.
func FolderOf(set models.CardSet) string {
	if set.Folder == "" {
		return naming.DefaultFolder
	}
	return set.Folder
}

// FolderNames returns the distinct folders referenced by sets, in the order
// they are first seen.
func FolderNames(sets []models.CardSet) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, set := range sets {
		name := FolderOf(set)
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// GroupByFolder buckets sets by folder, keeping insertion order inside each bucket.
func GroupByFolder(sets []models.CardSet) map[string][]models.CardSet {
	groups := make(map[string][]models.CardSet)
	for _, set := range sets {
		name := FolderOf(set)
		groups[name] = append(groups[name], set)
	}
	return groups
}

// Summarize counts sets and cards per folder, in FolderNames order.
func Summarize(sets []models.CardSet) []FolderSummary {
	groups := GroupByFolder(sets)
	summaries := []FolderSummary{}
	for _, name := range FolderNames(sets) {
		summary := FolderSummary{Name: name, Sets: len(groups[name])}
		for _, set := range groups[name] {
			summary.Cards += set.CardCount()
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
