package storage

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/nodebook-local/models"
	"github.com/andrewpaige1/nodebook-local/naming"
)

// Store owns the persisted collection of card sets.
//
// Storage faults never reach the caller: reads fall back to empty results and
// failed writes are logged and dropped. Callers therefore cannot tell "no
// data" from "storage failed".
//
// Every mutation loads the whole collection, changes it in memory and writes
// it back. There is no locking or version check, so two mutations running at
// the same time race and the later write wins. Callers are expected to issue
// one mutation at a time and wait for it before the next.
type Store struct {
	backend Backend
	log     zerolog.Logger
}

func NewStore(backend Backend, logger zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		log:     logger.With().Str("component", "store").Logger(),
	}
}

// load reads the collection. ok is false when the slot could not be read or
// decoded, in which case mutations must not write over it.
func (s *Store) load(ctx context.Context) (sets []models.CardSet, ok bool) {
	raw, present, err := s.backend.Get(ctx, CollectionKey)
	if err != nil {
		s.log.Error().Err(err).Msg("Error loading flashcard sets")
		return []models.CardSet{}, false
	}
	if !present || raw == "" {
		return []models.CardSet{}, true
	}
	if err := json.Unmarshal([]byte(raw), &sets); err != nil {
		s.log.Error().Err(err).Msg("Stored flashcard sets are malformed, treating as empty")
		return []models.CardSet{}, false
	}
	if sets == nil {
		sets = []models.CardSet{}
	}
	return sets, true
}

func (s *Store) saveAll(ctx context.Context, sets []models.CardSet) {
	b, err := json.Marshal(sets)
	if err != nil {
		s.log.Error().Err(err).Msg("Error encoding flashcard sets")
		return
	}
	if err := s.backend.Set(ctx, CollectionKey, string(b)); err != nil {
		s.log.Error().Err(err).Msg("Error saving sets")
	}
}

// mutate applies fn to the loaded collection and persists the result. It
// skips the write when the collection could not be loaded or fn reports no
// change.
func (s *Store) mutate(ctx context.Context, op string, fn func([]models.CardSet) ([]models.CardSet, bool)) {
	sets, ok := s.load(ctx)
	if !ok {
		s.log.Warn().Str("op", op).Msg("Skipping write, stored collection is unavailable")
		return
	}
	updated, changed := fn(sets)
	if !changed {
		return
	}
	s.saveAll(ctx, updated)
}

// LoadAll returns every stored set in insertion order.
func (s *Store) LoadAll(ctx context.Context) []models.CardSet {
	sets, _ := s.load(ctx)
	return sets
}

// Save appends set to the collection. Ids are not checked for duplicates.
func (s *Store) Save(ctx context.Context, set models.CardSet) {
	s.mutate(ctx, "save", func(sets []models.CardSet) ([]models.CardSet, bool) {
		return append(sets, set), true
	})
}

// LoadByFolder returns the sets whose folder equals folder exactly, in
// insertion order.
func (s *Store) LoadByFolder(ctx context.Context, folder string) []models.CardSet {
	out := []models.CardSet{}
	for _, set := range s.LoadAll(ctx) {
		if set.Folder == folder {
			out = append(out, set)
		}
	}
	return out
}

// LoadFolders returns the distinct folder names. An empty store still
// reports the default folder.
func (s *Store) LoadFolders(ctx context.Context) []string {
	folders := FolderNames(s.LoadAll(ctx))
	if len(folders) == 0 {
		return []string{naming.DefaultFolder}
	}
	return folders
}

// FolderNamesExcluding returns LoadFolders without folder.
func (s *Store) FolderNamesExcluding(ctx context.Context, folder string) []string {
	return slices.DeleteFunc(s.LoadFolders(ctx), func(name string) bool {
		return name == folder
	})
}

// NextDefaultFolderName suggests a name for a new folder.
func (s *Store) NextDefaultFolderName(ctx context.Context) string {
	return naming.NextDefaultFolderName(s.LoadFolders(ctx))
}

// DeleteFolder removes every set in folder.
func (s *Store) DeleteFolder(ctx context.Context, folder string) {
	s.mutate(ctx, "delete_folder", func(sets []models.CardSet) ([]models.CardSet, bool) {
		n := len(sets)
		sets = slices.DeleteFunc(sets, func(set models.CardSet) bool {
			return set.Folder == folder
		})
		return sets, len(sets) != n
	})
}

// DeleteSet removes the sets matching both folder and id.
func (s *Store) DeleteSet(ctx context.Context, folder string, id models.SetID) {
	s.mutate(ctx, "delete_set", func(sets []models.CardSet) ([]models.CardSet, bool) {
		n := len(sets)
		sets = slices.DeleteFunc(sets, func(set models.CardSet) bool {
			return set.Folder == folder && set.ID == id
		})
		return sets, len(sets) != n
	})
}

// RenameFolder moves every set in oldName to newName. newName is not checked
// for collisions.
func (s *Store) RenameFolder(ctx context.Context, oldName, newName string) {
	s.mutate(ctx, "rename_folder", func(sets []models.CardSet) ([]models.CardSet, bool) {
		changed := false
		for i := range sets {
			if sets[i].Folder == oldName {
				sets[i].Folder = newName
				changed = true
			}
		}
		return sets, changed
	})
}

// RenameSet sets the title of the set with id. It reports false, and writes
// nothing, when no such set exists.
func (s *Store) RenameSet(ctx context.Context, id models.SetID, title string) (models.CardSet, bool) {
	var (
		updated models.CardSet
		found   bool
	)
	s.mutate(ctx, "rename_set", func(sets []models.CardSet) ([]models.CardSet, bool) {
		i := slices.IndexFunc(sets, func(set models.CardSet) bool { return set.ID == id })
		if i < 0 {
			return sets, false
		}
		sets[i].Title = title
		updated, found = sets[i], true
		return sets, true
	})
	return updated, found
}

// FindSet returns the first set with id.
func (s *Store) FindSet(ctx context.Context, id models.SetID) (models.CardSet, bool) {
	sets := s.LoadAll(ctx)
	i := slices.IndexFunc(sets, func(set models.CardSet) bool { return set.ID == id })
	if i < 0 {
		return models.CardSet{}, false
	}
	return sets[i], true
}

// ListTitlesInFolder returns the titles of the sets in folder, skipping the
// set with excludeID when it is non-empty.
func (s *Store) ListTitlesInFolder(ctx context.Context, folder string, excludeID models.SetID) []string {
	titles := []string{}
	for _, set := range s.LoadByFolder(ctx, folder) {
		if excludeID != "" && set.ID == excludeID {
			continue
		}
		titles = append(titles, set.Title)
	}
	return titles
}

// Clear removes the whole collection.
func (s *Store) Clear(ctx context.Context) {
	if err := s.backend.Remove(ctx, CollectionKey); err != nil {
		s.log.Error().Err(err).Msg("Error clearing flashcard sets")
		return
	}
	s.log.Info().Msg("All flashcard sets cleared")
}
