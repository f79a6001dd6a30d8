package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/podsni/TMDB-media/pkg/logger"
	"github.com/podsni/TMDB-media/pkg/media"
	"github.com/podsni/TMDB-media/pkg/note"
)

var (
	// ErrCancelled is the non-error outcome of the interactive folder
	// prompt being dismissed. No file is written.
	ErrCancelled = errors.New("folder selection cancelled")

	// ErrFolderMissing is a recoverable failure: the destination folder
	// does not exist and auto-create is off.
	ErrFolderMissing = errors.New("destination folder does not exist")
)

// Policy is the folder-selection configuration. It is passed by value and
// returned possibly updated; the caller persists the returned copy.
type Policy struct {
	AskForLocation       bool
	RememberLastLocation bool
	AutoCreateFolder     bool
	DefaultFolder        string
	MovieFolder          string
	TVFolder             string
	AnimeFolder          string
	LastUsedMovieFolder  string
	LastUsedTVFolder     string
	LastUsedAnimeFolder  string
}

// FolderFor picks the configured folder for a category, preferring the
// last-used folder when the policy remembers locations.
func (p Policy) FolderFor(category note.Category) string {
	if p.RememberLastLocation {
		switch category {
		case note.CategoryMovie:
			return p.LastUsedMovieFolder
		case note.CategoryTV:
			return p.LastUsedTVFolder
		case note.CategoryAnime:
			return p.LastUsedAnimeFolder
		}
	}
	switch category {
	case note.CategoryMovie:
		return p.MovieFolder
	case note.CategoryTV:
		return p.TVFolder
	case note.CategoryAnime:
		return p.AnimeFolder
	}
	return p.DefaultFolder
}

// WithLastUsed records folder as the last-used location for a category.
func (p Policy) WithLastUsed(category note.Category, folder string) Policy {
	switch category {
	case note.CategoryMovie:
		p.LastUsedMovieFolder = folder
	case note.CategoryTV:
		p.LastUsedTVFolder = folder
	case note.CategoryAnime:
		p.LastUsedAnimeFolder = folder
	}
	return p
}

// ChooseFolderFunc resolves an interactive folder choice for a category. An
// empty string with a nil error means the user cancelled.
type ChooseFolderFunc func(ctx context.Context, category note.Category) (string, error)

// Location is a resolved destination. FileName carries no extension.
type Location struct {
	Folder   string
	FileName string
}

// Path returns the vault-relative document path.
func (l Location) Path() string {
	return l.Folder + "/" + l.FileName + ".md"
}

// ResolveOptions tune a single resolution.
type ResolveOptions struct {
	// Folder overrides every policy rule when set.
	Folder string
	// Choose handles the interactive prompt when the policy asks for a
	// location. A nil Choose skips the prompt and falls through to the
	// configured folders.
	Choose ChooseFolderFunc
	// NameTemplate overrides the file name template.
	NameTemplate string
}

// Resolver decides destination folders and collision-free file names.
type Resolver struct {
	fs FS
}

func NewResolver(fs FS) Resolver {
	return Resolver{fs: fs}
}

// Resolve picks the destination for an item under the policy. It returns the
// location and the (possibly updated) policy for the caller to persist.
// Cancellation short-circuits before any folder is created.
func (r Resolver) Resolve(ctx context.Context, item media.Item, policy Policy, opts ResolveOptions) (Location, Policy, error) {
	log := logger.FromCtx(ctx)
	category := note.Classify(item)

	folder := opts.Folder
	switch {
	case folder != "":
		// explicit override wins
	case policy.AskForLocation && opts.Choose != nil:
		chosen, err := opts.Choose(ctx, category)
		if err != nil {
			return Location{}, policy, fmt.Errorf("folder selection failed: %w", err)
		}
		if chosen == "" {
			return Location{}, policy, ErrCancelled
		}
		folder = chosen
		if policy.RememberLastLocation {
			policy = policy.WithLastUsed(category, folder)
		}
	default:
		folder = policy.FolderFor(category)
	}

	if policy.AutoCreateFolder {
		if err := r.ensureFolder(folder); err != nil {
			return Location{}, policy, fmt.Errorf("failed to create folder %q: %w", folder, err)
		}
	} else if !r.fs.Exists(folder) {
		return Location{}, policy, fmt.Errorf("%w: %s", ErrFolderMissing, folder)
	}

	nameTemplate := opts.NameTemplate
	if nameTemplate == "" {
		nameTemplate = note.DefaultFileNameTemplate
	}

	base := FileName(nameTemplate, item)
	name := r.nextAvailable(folder, base)
	log.Debugw("resolved note location", "folder", folder, "file", name, "category", category)

	return Location{Folder: folder, FileName: name}, policy, nil
}

// ensureFolder creates every missing path segment from root to leaf.
func (r Resolver) ensureFolder(folder string) error {
	var current string
	for _, segment := range strings.Split(folder, "/") {
		if segment == "" {
			continue
		}
		if current == "" {
			current = segment
		} else {
			current = current + "/" + segment
		}
		if r.fs.Exists(current) {
			continue
		}
		if err := r.fs.Mkdir(current); err != nil {
			return err
		}
	}
	return nil
}

// nextAvailable probes base.md, base (1).md, base (2).md, ... until a path
// is unused.
func (r Resolver) nextAvailable(folder, base string) string {
	name := base
	for counter := 1; r.fs.Exists(folder + "/" + name + ".md"); counter++ {
		name = fmt.Sprintf("%s (%d)", base, counter)
	}
	return name
}
