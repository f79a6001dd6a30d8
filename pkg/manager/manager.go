// Package manager coordinates catalog lookups, note rendering, and vault
// persistence behind one façade used by both the CLI and the HTTP server.
package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/podsni/TMDB-media/pkg/cache"
	"github.com/podsni/TMDB-media/pkg/jikan"
	"github.com/podsni/TMDB-media/pkg/logger"
	"github.com/podsni/TMDB-media/pkg/media"
	"github.com/podsni/TMDB-media/pkg/note"
	"github.com/podsni/TMDB-media/pkg/settings"
	"github.com/podsni/TMDB-media/pkg/tmdb"
	"github.com/podsni/TMDB-media/pkg/vault"
)

const movieGenreCacheKey = "movie-genres"

// MediaManager fronts the metadata catalogs and the note pipeline.
type MediaManager struct {
	tmdb     tmdb.Client
	jikan    jikan.Client
	store    settings.Store
	resolver vault.Resolver
	fs       vault.FS
	adapter  note.Adapter
	engine   note.Engine
	genres   *cache.Cache[string, []tmdb.Genre]
}

// New wires a MediaManager from its collaborators.
func New(t tmdb.Client, j jikan.Client, fs vault.FS, store settings.Store) MediaManager {
	return MediaManager{
		tmdb:     t,
		jikan:    j,
		store:    store,
		resolver: vault.NewResolver(fs),
		fs:       fs,
		adapter:  note.NewAdapter(),
		engine:   note.NewEngine(),
		genres:   cache.New[string, []tmdb.Genre](),
	}
}

// degradedSearch reports whether err is a configuration gap that should turn
// a search into an empty result instead of a failure.
func degradedSearch(err error) bool {
	return errors.Is(err, tmdb.ErrMissingAPIKey) || errors.Is(err, jikan.ErrDisabled)
}

// SearchMovies queries the movie catalog. A missing API key logs a warning
// and yields no results rather than an error.
func (m MediaManager) SearchMovies(ctx context.Context, query string) ([]media.Item, error) {
	log := logger.FromCtx(ctx)

	movies, err := m.tmdb.SearchMovies(ctx, query)
	if err != nil {
		if degradedSearch(err) {
			log.Warnw("movie search skipped", "reason", err)
			return []media.Item{}, nil
		}
		return nil, fmt.Errorf("movie search failed: %w", err)
	}

	items := make([]media.Item, len(movies))
	for i := range movies {
		items[i] = media.FromMovie(&movies[i])
	}
	return items, nil
}

// SearchTVShows queries the tv catalog with the same degraded behavior as
// SearchMovies.
func (m MediaManager) SearchTVShows(ctx context.Context, query string) ([]media.Item, error) {
	log := logger.FromCtx(ctx)

	shows, err := m.tmdb.SearchTVShows(ctx, query)
	if err != nil {
		if degradedSearch(err) {
			log.Warnw("tv search skipped", "reason", err)
			return []media.Item{}, nil
		}
		return nil, fmt.Errorf("tv search failed: %w", err)
	}

	items := make([]media.Item, len(shows))
	for i := range shows {
		items[i] = media.FromTVShow(&shows[i])
	}
	return items, nil
}

// SearchAnime queries the anime catalog. A disabled provider logs a warning
// and yields no results rather than an error.
func (m MediaManager) SearchAnime(ctx context.Context, query string) ([]media.Item, error) {
	log := logger.FromCtx(ctx)

	results, err := m.jikan.SearchAnime(ctx, query)
	if err != nil {
		if degradedSearch(err) {
			log.Warnw("anime search skipped", "reason", err)
			return []media.Item{}, nil
		}
		return nil, fmt.Errorf("anime search failed: %w", err)
	}

	items := make([]media.Item, len(results))
	for i := range results {
		items[i] = media.FromAnime(&results[i])
	}
	return items, nil
}

// SearchResults groups one query's results across every catalog.
type SearchResults struct {
	Movies []media.Item `json:"movies"`
	TV     []media.Item `json:"tv"`
	Anime  []media.Item `json:"anime"`
}

// SearchAll fans the query out to every catalog concurrently. A catalog that
// is unconfigured contributes an empty slice; a catalog that fails fails the
// whole search.
func (m MediaManager) SearchAll(ctx context.Context, query string) (SearchResults, error) {
	var (
		results SearchResults
		wg      sync.WaitGroup
		errs    [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		results.Movies, errs[0] = m.SearchMovies(ctx, query)
	}()
	go func() {
		defer wg.Done()
		results.TV, errs[1] = m.SearchTVShows(ctx, query)
	}()
	go func() {
		defer wg.Done()
		results.Anime, errs[2] = m.SearchAnime(ctx, query)
	}()
	wg.Wait()

	return results, errors.Join(errs[:]...)
}

// TopAnime lists the top-ranked anime under the given filter.
func (m MediaManager) TopAnime(ctx context.Context, filter jikan.TopFilter) ([]media.Item, error) {
	results, err := m.jikan.TopAnime(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("top anime lookup failed: %w", err)
	}

	items := make([]media.Item, len(results))
	for i := range results {
		items[i] = media.FromAnime(&results[i])
	}
	return items, nil
}

// CurrentSeasonAnime lists the anime airing in the season containing now.
func (m MediaManager) CurrentSeasonAnime(ctx context.Context) ([]media.Item, error) {
	year, season := jikan.CurrentSeason(time.Now())
	results, err := m.jikan.SeasonalAnime(ctx, year, season)
	if err != nil {
		return nil, fmt.Errorf("seasonal anime lookup failed: %w", err)
	}

	items := make([]media.Item, len(results))
	for i := range results {
		items[i] = media.FromAnime(&results[i])
	}
	return items, nil
}

// MovieByID fetches one movie by catalog id as a detail-bearing item.
func (m MediaManager) MovieByID(ctx context.Context, id int) (media.Item, *media.Detail, error) {
	details, err := m.tmdb.GetMovieDetails(ctx, id)
	if err != nil {
		return media.Item{}, nil, fmt.Errorf("movie lookup failed: %w", err)
	}
	return media.FromMovie(&details.Movie), &media.Detail{Movie: details}, nil
}

// TVShowByID fetches one tv show by catalog id as a detail-bearing item.
func (m MediaManager) TVShowByID(ctx context.Context, id int) (media.Item, *media.Detail, error) {
	details, err := m.tmdb.GetTVShowDetails(ctx, id)
	if err != nil {
		return media.Item{}, nil, fmt.Errorf("tv show lookup failed: %w", err)
	}
	return media.FromTVShow(&details.TVShow), &media.Detail{TV: details}, nil
}

// AnimeByID fetches one anime by catalog id as a detail-bearing item.
func (m MediaManager) AnimeByID(ctx context.Context, id int) (media.Item, *media.Detail, error) {
	details, err := m.jikan.GetAnimeDetails(ctx, id)
	if err != nil {
		return media.Item{}, nil, fmt.Errorf("anime lookup failed: %w", err)
	}
	return media.FromAnime(details), &media.Detail{Anime: details}, nil
}

// ItemByID fetches an item of the given kind by catalog id.
func (m MediaManager) ItemByID(ctx context.Context, kind media.Kind, id int) (media.Item, *media.Detail, error) {
	switch kind {
	case media.KindMovie:
		return m.MovieByID(ctx, id)
	case media.KindTV:
		return m.TVShowByID(ctx, id)
	case media.KindAnime:
		return m.AnimeByID(ctx, id)
	}
	return media.Item{}, nil, fmt.Errorf("unknown media kind %q", kind)
}

// FetchDetail fetches the detail record for an item. Detail fetches are best
// effort: a failure logs a warning and returns nil, and rendering degrades
// to its defaults.
func (m MediaManager) FetchDetail(ctx context.Context, item media.Item) *media.Detail {
	log := logger.FromCtx(ctx)

	switch item.Kind {
	case media.KindMovie:
		details, err := m.tmdb.GetMovieDetails(ctx, item.ID())
		if err != nil {
			log.Warnw("movie detail fetch failed", "id", item.ID(), "error", err)
			return nil
		}
		return &media.Detail{Movie: details}
	case media.KindTV:
		details, err := m.tmdb.GetTVShowDetails(ctx, item.ID())
		if err != nil {
			log.Warnw("tv detail fetch failed", "id", item.ID(), "error", err)
			return nil
		}
		return &media.Detail{TV: details}
	case media.KindAnime:
		details, err := m.jikan.GetAnimeDetails(ctx, item.ID())
		if err != nil {
			log.Warnw("anime detail fetch failed", "id", item.ID(), "error", err)
			return nil
		}
		return &media.Detail{Anime: details}
	}
	return nil
}

// MovieGenreNames maps genre ids from a search result to display names. The
// genre list is fetched once per process and cached.
func (m MediaManager) MovieGenreNames(ctx context.Context, ids []int) ([]string, error) {
	genres, err := m.genres.GetOrFill(movieGenreCacheKey, func() ([]tmdb.Genre, error) {
		return m.tmdb.GetMovieGenres(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("genre list lookup failed: %w", err)
	}

	byID := make(map[int]string, len(genres))
	for _, g := range genres {
		byID[g.ID] = g.Name
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// Preview renders an item's document without touching the vault or the
// stored folder policy.
func (m MediaManager) Preview(ctx context.Context, item media.Item, detail *media.Detail) (string, error) {
	loaded, err := m.store.Load(ctx)
	if err != nil {
		return "", err
	}

	vars := m.adapter.Normalize(item, detail)
	return m.engine.Render(loaded.TemplateFor(string(item.Kind)), vars, item), nil
}

// CreateOptions tune a single note creation.
type CreateOptions struct {
	// Folder overrides the folder policy entirely.
	Folder string
	// Choose handles the interactive folder prompt; nil skips it.
	Choose vault.ChooseFolderFunc
	// Detail supplies an already fetched detail record; nil fetches one.
	Detail *media.Detail
}

// CreateResult describes a persisted note.
type CreateResult struct {
	Path     string        `json:"path"`
	Category note.Category `json:"category"`
	Content  string        `json:"content"`
}

// CreateNote runs the full pipeline for one item: fetch detail, render the
// template, resolve the destination, and write the document. An updated
// folder policy (a remembered interactive choice) is persisted before
// returning. Cancellation surfaces as vault.ErrCancelled with nothing
// written.
func (m MediaManager) CreateNote(ctx context.Context, item media.Item, opts CreateOptions) (CreateResult, error) {
	log := logger.FromCtx(ctx)

	loaded, err := m.store.Load(ctx)
	if err != nil {
		return CreateResult{}, err
	}

	detail := opts.Detail
	if detail == nil {
		detail = m.FetchDetail(ctx, item)
	}
	vars := m.adapter.Normalize(item, detail)
	doc := m.engine.Render(loaded.TemplateFor(string(item.Kind)), vars, item)

	policy := loaded.Policy()
	location, updated, err := m.resolver.Resolve(ctx, item, policy, vault.ResolveOptions{
		Folder:       opts.Folder,
		Choose:       opts.Choose,
		NameTemplate: loaded.FileNameTemplate,
	})
	if err != nil {
		return CreateResult{}, err
	}

	if updated != policy {
		if err := m.store.Save(ctx, loaded.ApplyPolicy(updated)); err != nil {
			log.Warnw("failed to persist folder policy", "error", err)
		}
	}

	path := location.Path()
	if err := m.fs.WriteFile(path, []byte(doc)); err != nil {
		return CreateResult{}, fmt.Errorf("failed to write note %q: %w", path, err)
	}

	log.Infow("created note", "path", path, "kind", item.Kind, "id", item.ID())
	return CreateResult{Path: path, Category: note.Classify(item), Content: doc}, nil
}

// SyncFolders repoints the per-category folders under the stored default
// base folder and persists the result.
func (m MediaManager) SyncFolders(ctx context.Context) (settings.Settings, error) {
	return m.updateSettings(ctx, settings.Settings.SyncSubfoldersToDefaultBase)
}

// ResetFolders restores the stock folder configuration and persists it.
// Templates and behavior toggles are untouched.
func (m MediaManager) ResetFolders(ctx context.Context) (settings.Settings, error) {
	return m.updateSettings(ctx, settings.Settings.ResetFolders)
}

func (m MediaManager) updateSettings(ctx context.Context, change func(settings.Settings) settings.Settings) (settings.Settings, error) {
	current, err := m.store.Load(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	updated := change(current)
	if err := m.store.Save(ctx, updated); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return updated, nil
}

// ValidateConfiguration returns human-readable notices for configuration
// gaps. It only inspects client configuration and never issues requests.
// Notices are advisory; an empty slice means everything is usable.
func (m MediaManager) ValidateConfiguration() []string {
	var notices []string

	if !m.tmdb.Configured() {
		notices = append(notices, "TMDB API key is not configured; movie and tv search will return nothing")
	}
	if !m.jikan.Enabled() {
		notices = append(notices, "anime provider is disabled; anime search will return nothing")
	}

	return notices
}
