// Package settings persists the user-editable configuration: templates and
// the folder policy. Values load once at startup and are written back after
// every successful interactive folder choice.
package settings

import (
	"strings"

	"github.com/podsni/TMDB-media/pkg/note"
	"github.com/podsni/TMDB-media/pkg/vault"
)

// Settings is the durable user configuration.
type Settings struct {
	MovieTemplate    string
	TVTemplate       string
	AnimeTemplate    string
	FileNameTemplate string

	AskForLocation       bool
	RememberLastLocation bool
	AutoCreateFolder     bool

	DefaultFolder string
	MovieFolder   string
	TVFolder      string
	AnimeFolder   string

	LastUsedMovieFolder string
	LastUsedTVFolder    string
	LastUsedAnimeFolder string
}

// Defaults returns the stock settings.
func Defaults() Settings {
	return Settings{
		MovieTemplate:    note.DefaultMovieTemplate,
		TVTemplate:       note.DefaultTVTemplate,
		AnimeTemplate:    note.DefaultAnimeTemplate,
		FileNameTemplate: note.DefaultFileNameTemplate,

		AskForLocation:       true,
		RememberLastLocation: true,
		AutoCreateFolder:     true,

		DefaultFolder: "TMDB",
		MovieFolder:   "TMDB/Movies",
		TVFolder:      "TMDB/TV Shows",
		AnimeFolder:   "TMDB/Anime",

		LastUsedMovieFolder: "TMDB/Movies",
		LastUsedTVFolder:    "TMDB/TV Shows",
		LastUsedAnimeFolder: "TMDB/Anime",
	}
}

// Policy converts the folder-related fields into the resolver's policy value.
func (s Settings) Policy() vault.Policy {
	return vault.Policy{
		AskForLocation:       s.AskForLocation,
		RememberLastLocation: s.RememberLastLocation,
		AutoCreateFolder:     s.AutoCreateFolder,
		DefaultFolder:        s.DefaultFolder,
		MovieFolder:          s.MovieFolder,
		TVFolder:             s.TVFolder,
		AnimeFolder:          s.AnimeFolder,
		LastUsedMovieFolder:  s.LastUsedMovieFolder,
		LastUsedTVFolder:     s.LastUsedTVFolder,
		LastUsedAnimeFolder:  s.LastUsedAnimeFolder,
	}
}

// ApplyPolicy folds a possibly updated resolver policy back into the
// settings for persistence.
func (s Settings) ApplyPolicy(p vault.Policy) Settings {
	s.AskForLocation = p.AskForLocation
	s.RememberLastLocation = p.RememberLastLocation
	s.AutoCreateFolder = p.AutoCreateFolder
	s.DefaultFolder = p.DefaultFolder
	s.MovieFolder = p.MovieFolder
	s.TVFolder = p.TVFolder
	s.AnimeFolder = p.AnimeFolder
	s.LastUsedMovieFolder = p.LastUsedMovieFolder
	s.LastUsedTVFolder = p.LastUsedTVFolder
	s.LastUsedAnimeFolder = p.LastUsedAnimeFolder
	return s
}

// TemplateFor returns the stored template for a content kind string.
func (s Settings) TemplateFor(kind string) string {
	switch kind {
	case "tv":
		return s.TVTemplate
	case "anime":
		return s.AnimeTemplate
	default:
		return s.MovieTemplate
	}
}

// SyncSubfoldersToDefaultBase repoints the category folders under the
// current default base folder.
func (s Settings) SyncSubfoldersToDefaultBase() Settings {
	base := strings.TrimRight(s.DefaultFolder, "/")
	if base == "" {
		base = "TMDB"
	}

	s.MovieFolder = base + "/Movies"
	s.TVFolder = base + "/TV Shows"
	s.AnimeFolder = base + "/Anime"

	if s.RememberLastLocation {
		s.LastUsedMovieFolder = s.MovieFolder
		s.LastUsedTVFolder = s.TVFolder
		s.LastUsedAnimeFolder = s.AnimeFolder
	}

	return s
}

// ResetFolders restores the stock folder configuration, preserving templates
// and behavior toggles.
func (s Settings) ResetFolders() Settings {
	defaults := Defaults()
	s.DefaultFolder = defaults.DefaultFolder
	s.MovieFolder = defaults.MovieFolder
	s.TVFolder = defaults.TVFolder
	s.AnimeFolder = defaults.AnimeFolder
	s.LastUsedMovieFolder = defaults.LastUsedMovieFolder
	s.LastUsedTVFolder = defaults.LastUsedTVFolder
	s.LastUsedAnimeFolder = defaults.LastUsedAnimeFolder
	return s
}

// hasLegacyArtifacts reports whether a stored template still carries the old
// markdown-era formatting and must be replaced with the current default.
func hasLegacyArtifacts(template string) bool {
	return strings.Contains(template, "**") || strings.Contains(template, "![")
}

// healLegacyTemplates swaps any markdown-era template for the current
// default. The second return reports whether anything changed and needs
// persisting.
func healLegacyTemplates(s Settings) (Settings, bool) {
	healed := false
	if hasLegacyArtifacts(s.MovieTemplate) {
		s.MovieTemplate = note.DefaultMovieTemplate
		healed = true
	}
	if hasLegacyArtifacts(s.TVTemplate) {
		s.TVTemplate = note.DefaultTVTemplate
		healed = true
	}
	if hasLegacyArtifacts(s.AnimeTemplate) {
		s.AnimeTemplate = note.DefaultAnimeTemplate
		healed = true
	}
	return s, healed
}
