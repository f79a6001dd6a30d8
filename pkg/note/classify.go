package note

import (
	"strings"

	"github.com/podsni/TMDB-media/pkg/media"
)

// Category is the content category governing folder and tag placement.
type Category string

const (
	CategoryMovie Category = "movie"
	CategoryTV    Category = "tv"
	CategoryAnime Category = "anime"
)

// animeKeywords is the fixed heuristic keyword set. The exact list and its
// substring semantics are load-bearing: existing content placement depends on
// them, so entries must not be reordered, removed, or "improved".
var animeKeywords = []string{
	"anime", "manga", "otaku", "shounen", "shoujo", "seinen", "josei",
	"studio ghibli", "ghibli", "pokemon", "dragon ball", "naruto",
	"one piece", "attack on titan", "demon slayer", "my hero academia",
	"death note", "fullmetal alchemist", "spirited away", "totoro",
	"princess mononoke", "howl's moving castle", "kiki's delivery service",
}

// IsAnime reports whether the combined title and overview text matches the
// anime keyword heuristic. Pure and deterministic; case-insensitive substring
// containment, any single match wins.
func IsAnime(title, overview string) bool {
	combined := strings.ToLower(title + " " + overview)
	for _, keyword := range animeKeywords {
		if strings.Contains(combined, keyword) {
			return true
		}
	}
	return false
}

// Classify decides the category for an item. Anime records are anime by
// construction; movie and tv records are reclassified as anime when the
// keyword heuristic matches.
func Classify(item media.Item) Category {
	switch item.Kind {
	case media.KindAnime:
		return CategoryAnime
	case media.KindMovie:
		if IsAnime(item.Movie.Title, item.Movie.Overview) {
			return CategoryAnime
		}
		return CategoryMovie
	case media.KindTV:
		if IsAnime(item.TV.Name, item.TV.Overview) {
			return CategoryAnime
		}
		return CategoryTV
	}
	return CategoryMovie
}
