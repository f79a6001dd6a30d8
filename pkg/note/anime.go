package note

import (
	"strconv"

	"github.com/podsni/TMDB-media/pkg/jikan"
)

func (a Adapter) animeVariables(anime *jikan.Anime, full *jikan.Anime) *Variables {
	// The full record wins; the summary record's own lists are the fallback
	// before the TBD placeholder.
	source := anime
	if full != nil {
		source = full
	}

	genresList := listPlaceholder
	studiosList := listPlaceholder
	producersList := listPlaceholder
	if len(source.Genres) > 0 {
		genresList = yamlList(namedNames(source.Genres))
	}
	if len(source.Studios) > 0 {
		studiosList = yamlList(namedNames(source.Studios))
	}
	if len(source.Producers) > 0 {
		producersList = yamlList(namedNames(source.Producers))
	}

	englishTitle := anime.TitleEnglish
	if englishTitle == "" {
		englishTitle = anime.Title
	}
	japaneseTitle := anime.TitleJapanese
	if japaneseTitle == "" {
		japaneseTitle = anime.Title
	}
	synopsis := anime.Synopsis
	if synopsis == "" {
		synopsis = "No synopsis available"
	}

	vars := NewVariables()
	vars.Set("title", cleanValue(anime.Title))
	vars.Set("title_english", cleanValue(englishTitle))
	vars.Set("title_japanese", cleanValue(japaneseTitle))
	vars.Set("year", optionalInt(anime.Year))
	vars.Set("synopsis", cleanValue(synopsis))
	vars.Set("rating", anime.Rating)
	vars.Set("score", optionalFloat(anime.Score))
	vars.Set("scored_by", optionalInt(anime.ScoredBy))
	vars.Set("members", optionalInt(anime.Members))
	vars.Set("favorites", optionalInt(anime.Favorites))
	vars.Set("episodes", optionalInt(anime.Episodes))
	vars.Set("duration", anime.Duration)
	vars.Set("airing", strconv.FormatBool(anime.Airing))
	vars.Set("aired_from", isoOr(anime.Aired.From, ""))
	vars.Set("aired_to", isoOr(anime.Aired.To, ""))
	vars.Set("mal_id", strconv.Itoa(anime.MalID))
	vars.Set("url", anime.URL)
	vars.Set("provider", a.Provider)
	vars.Set("image_url", anime.ImageURL())
	vars.Set("genres_list", genresList)
	vars.Set("studios_list", studiosList)
	vars.Set("producers_list", producersList)
	vars.Set("current_date", a.currentDate())
	return vars
}

func namedNames(refs []jikan.Named) []string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return names
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// optionalFloat renders with the shortest representation, so 8.50 shows as
// 8.5 and 8.0 as 8.
func optionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
