// Package library implements the user-facing flows of the flashcard app on
// top of the store: generating a set from text, creating and renaming
// folders, renaming sets and checking the free-tier quota.
//
// All names are made collision-free with the naming package and cut to
// naming.MaxNameLength before they are stored.
package library

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/andrewpaige1/nodebook-local/generate"
	"github.com/andrewpaige1/nodebook-local/models"
	"github.com/andrewpaige1/nodebook-local/naming"
	"github.com/andrewpaige1/nodebook-local/storage"
	"github.com/andrewpaige1/nodebook-local/utils"
)

// DefaultCardLimit is the number of cards a free user may generate.
const DefaultCardLimit = 200

var (
	ErrEmptyInput           = errors.New("no text to generate flashcards from")
	ErrQuotaExceeded        = errors.New("card generation limit reached")
	ErrGenerationInProgress = errors.New("flashcard generation already in progress")
	ErrNothingGenerated     = errors.New("no flashcards could be generated")
	ErrSetNotFound          = errors.New("flashcard set not found")
	ErrFolderNotFound       = errors.New("folder not found")
)

// Clock supplies creation timestamps.
type Clock func() time.Time

// IDSource supplies set ids.
type IDSource func(now time.Time) (models.SetID, error)

// Library wires the store, the usage counter and the generator together.
//
// The store performs unguarded read-modify-write cycles, so Library runs its
// own mutations one at a time. Reads are not serialized.
type Library struct {
	writes    sync.Mutex
	store     *storage.Store
	usage     *storage.UsageCounter
	generator generate.Generator
	limit     int
	now       Clock
	newID     IDSource
	inflight  *semaphore.Weighted
	log       zerolog.Logger
}

// Option customizes a Library.
type Option func(*Library)

// WithCardLimit overrides DefaultCardLimit.
func WithCardLimit(limit int) Option {
	return func(l *Library) { l.limit = limit }
}

func WithClock(now Clock) Option {
	return func(l *Library) { l.now = now }
}

func WithIDSource(ids IDSource) Option {
	return func(l *Library) { l.newID = ids }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Library) { l.log = logger.With().Str("component", "library").Logger() }
}

func New(store *storage.Store, usage *storage.UsageCounter, generator generate.Generator, opts ...Option) *Library {
	if generator == nil {
		generator = generate.Disabled
	}
	l := &Library{
		store:     store,
		usage:     usage,
		generator: generator,
		limit:     DefaultCardLimit,
		now:       time.Now,
		newID:     utils.NewSetID,
		inflight:  semaphore.NewWeighted(1),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// fitName allocates a collision-free name for base within existing and keeps
// it within naming.MaxNameLength. When the numeric suffix would push the name
// over the limit the base is shortened and the allocation retried.
func fitName(base string, existing []string) string {
	b := naming.Truncate(naming.NormalizeName(base), naming.MaxNameLength)
	for {
		name := naming.NextAvailableName(b, existing)
		over := utf8.RuneCountInString(name) - naming.MaxNameLength
		if over <= 0 {
			return name
		}
		b = naming.Truncate(b, utf8.RuneCountInString(b)-over)
	}
}

func folderOrDefault(folder string) string {
	if naming.NormalizeName(folder) == "" {
		return naming.DefaultFolder
	}
	return folder
}

// storedAs lists the folder field values that are shown as folder. Sets
// saved without a folder are shown in the default folder.
func storedAs(folder string) []string {
	if folder == naming.DefaultFolder {
		return []string{naming.DefaultFolder, ""}
	}
	return []string{folder}
}

// titlesIn returns the titles of the sets shown in folder, skipping exclude.
func (l *Library) titlesIn(ctx context.Context, folder string, exclude models.SetID) []string {
	var titles []string
	for _, stored := range storedAs(folder) {
		titles = append(titles, l.store.ListTitlesInFolder(ctx, stored, exclude)...)
	}
	return titles
}

// hasFolder reports whether any set is shown in folder.
func (l *Library) hasFolder(ctx context.Context, folder string) bool {
	return slices.ContainsFunc(l.store.LoadAll(ctx), func(set models.CardSet) bool {
		return storage.FolderOf(set) == folder
	})
}

// Folders lists the derived folders with their set and card counts. The
// default folder is listed even when it holds nothing.
func (l *Library) Folders(ctx context.Context) []storage.FolderSummary {
	summaries := storage.Summarize(l.store.LoadAll(ctx))
	if len(summaries) == 0 {
		return []storage.FolderSummary{{Name: naming.DefaultFolder}}
	}
	return summaries
}

// Sets returns the sets shown in folder, newest first.
func (l *Library) Sets(ctx context.Context, folder string) []models.CardSet {
	folder = folderOrDefault(folder)
	sets := []models.CardSet{}
	for _, set := range l.store.LoadAll(ctx) {
		if storage.FolderOf(set) == folder {
			sets = append(sets, set)
		}
	}
	slices.Reverse(sets)
	return sets
}

// Set returns one set by id.
func (l *Library) Set(ctx context.Context, id models.SetID) (models.CardSet, bool) {
	return l.store.FindSet(ctx, id)
}

// SuggestFolderName proposes a name for a new folder.
func (l *Library) SuggestFolderName(ctx context.Context) string {
	return l.store.NextDefaultFolderName(ctx)
}

// CreateFolder creates a folder named after name, or after the next default
// folder name when name is blank, and returns the name actually used. As
// folders only exist through their sets, an empty placeholder set is saved
// into it.
func (l *Library) CreateFolder(ctx context.Context, name string) (string, error) {
	l.writes.Lock()
	defer l.writes.Unlock()

	base := naming.NormalizeName(name)
	if base == "" {
		base = l.store.NextDefaultFolderName(ctx)
	}
	folder := fitName(base, l.store.LoadFolders(ctx))

	now := l.now()
	id, err := l.newID(now)
	if err != nil {
		return "", err
	}
	l.store.Save(ctx, models.CardSet{
		ID:        id,
		Folder:    folder,
		Title:     naming.Truncate(folder+" (empty)", naming.MaxNameLength),
		Cards:     []models.Card{},
		CreatedAt: now.UTC(),
	})
	l.log.Info().Str("folder", folder).Msg("Created folder")
	return folder, nil
}

// RenameFolder renames oldName after input, falling back to oldName when
// input is blank, and reports the final name and whether anything changed.
// It fails with ErrFolderNotFound when no set is shown in oldName.
func (l *Library) RenameFolder(ctx context.Context, oldName, input string) (string, bool, error) {
	l.writes.Lock()
	defer l.writes.Unlock()

	if !l.hasFolder(ctx, oldName) {
		return oldName, false, ErrFolderNotFound
	}

	base := naming.NormalizeName(input)
	if base == "" {
		base = oldName
	}
	safe := fitName(base, l.store.FolderNamesExcluding(ctx, oldName))
	if safe == oldName {
		return oldName, false, nil
	}
	for _, stored := range storedAs(oldName) {
		l.store.RenameFolder(ctx, stored, safe)
	}
	l.log.Info().Str("from", oldName).Str("to", safe).Msg("Renamed folder")
	return safe, true, nil
}

// RenameSet retitles the set id in folder. The set's own title does not count
// as a collision. A set that is not shown in folder is reported as
// ErrSetNotFound.
func (l *Library) RenameSet(ctx context.Context, folder string, id models.SetID, input string) (models.CardSet, error) {
	l.writes.Lock()
	defer l.writes.Unlock()

	folder = folderOrDefault(folder)
	current, ok := l.store.FindSet(ctx, id)
	if !ok || storage.FolderOf(current) != folder {
		return models.CardSet{}, ErrSetNotFound
	}

	base := naming.NormalizeName(input)
	if base == "" {
		base = current.Title
	}
	safe := fitName(base, l.titlesIn(ctx, folder, id))
	if safe == current.Title {
		return current, nil
	}

	updated, ok := l.store.RenameSet(ctx, id, safe)
	if !ok {
		return models.CardSet{}, ErrSetNotFound
	}
	return updated, nil
}

// DeleteFolder removes folder and every set in it.
func (l *Library) DeleteFolder(ctx context.Context, folder string) {
	l.writes.Lock()
	defer l.writes.Unlock()
	l.store.DeleteFolder(ctx, folder)
	l.log.Info().Str("folder", folder).Msg("Deleted folder")
}

// DeleteSet removes one set.
func (l *Library) DeleteSet(ctx context.Context, folder string, id models.SetID) {
	l.writes.Lock()
	defer l.writes.Unlock()
	l.store.DeleteSet(ctx, folder, id)
}

// ClearAll removes every set. The usage count is kept.
func (l *Library) ClearAll(ctx context.Context) {
	l.writes.Lock()
	defer l.writes.Unlock()
	l.store.Clear(ctx)
}
