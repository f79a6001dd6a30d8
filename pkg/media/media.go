// Package media defines the tagged union over the heterogeneous catalog
// record variants. Consumers dispatch on Kind with exhaustive switches rather
// than probing record shapes.
package media

import (
	"fmt"
	"time"

	"github.com/podsni/TMDB-media/pkg/jikan"
	"github.com/podsni/TMDB-media/pkg/tmdb"
)

// Kind discriminates the record variants.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
	KindAnime Kind = "anime"
)

// ParseKind validates a kind string from external input.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMovie, KindTV, KindAnime:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown media kind %q", s)
	}
}

// Item is one catalog record. Exactly the variant named by Kind is set.
type Item struct {
	Kind  Kind
	Movie *tmdb.Movie
	TV    *tmdb.TVShow
	Anime *jikan.Anime
}

func FromMovie(m *tmdb.Movie) Item {
	return Item{Kind: KindMovie, Movie: m}
}

func FromTVShow(tv *tmdb.TVShow) Item {
	return Item{Kind: KindTV, TV: tv}
}

func FromAnime(a *jikan.Anime) Item {
	return Item{Kind: KindAnime, Anime: a}
}

// Detail is the lazily fetched detail record for an item. A nil Detail, or a
// Detail whose variant pointer is nil, means the fetch failed or was skipped;
// downstream rendering degrades to defaults.
type Detail struct {
	Movie *tmdb.MovieDetails
	TV    *tmdb.TVShowDetails
	Anime *jikan.Anime
}

// Title returns the display title of the underlying record.
func (i Item) Title() string {
	switch i.Kind {
	case KindMovie:
		return i.Movie.Title
	case KindTV:
		return i.TV.Name
	case KindAnime:
		return i.Anime.Title
	}
	return ""
}

// Overview returns the synopsis or overview text of the underlying record.
func (i Item) Overview() string {
	switch i.Kind {
	case KindMovie:
		return i.Movie.Overview
	case KindTV:
		return i.TV.Overview
	case KindAnime:
		return i.Anime.Synopsis
	}
	return ""
}

// ID returns the catalog-native identifier.
func (i Item) ID() int {
	switch i.Kind {
	case KindMovie:
		return i.Movie.ID
	case KindTV:
		return i.TV.ID
	case KindAnime:
		return i.Anime.MalID
	}
	return 0
}

// Year returns the release year as text, or "N/A" when the source date is
// absent or unparsable.
func (i Item) Year() string {
	switch i.Kind {
	case KindMovie:
		return YearOf(i.Movie.ReleaseDate)
	case KindTV:
		return YearOf(i.TV.FirstAirDate)
	case KindAnime:
		if i.Anime.Year == nil {
			return "N/A"
		}
		return fmt.Sprintf("%d", *i.Anime.Year)
	}
	return "N/A"
}

// YearOf extracts the year from a date string, yielding "N/A" when the date
// cannot be parsed. It never fails.
func YearOf(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", t.Year())
}

// ParseDate parses the date formats the catalogs emit: plain YYYY-MM-DD from
// TMDB and RFC3339 timestamps from Jikan.
func ParseDate(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparsable date %q: %w", date, err)
	}
	return t, nil
}

// ISODate renders a parsed date as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
