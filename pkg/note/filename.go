package note

import (
	"github.com/podsni/TMDB-media/pkg/media"
)

// NameVariables builds the restricted identifier variable set used for file
// name templates. Only title/name, year, and original-title style
// placeholders are available; everything else in a name template survives as
// literal text and is sanitized away later.
func NameVariables(item media.Item) *Variables {
	vars := NewVariables()
	switch item.Kind {
	case media.KindMovie:
		vars.Set("title", item.Movie.Title)
		vars.Set("year", item.Year())
		vars.Set("original_title", item.Movie.OriginalTitle)
	case media.KindTV:
		vars.Set("title", item.TV.Name)
		vars.Set("name", item.TV.Name)
		vars.Set("year", item.Year())
		vars.Set("year_range", item.Year())
		vars.Set("original_name", item.TV.OriginalName)
	case media.KindAnime:
		vars.Set("title", item.Anime.Title)
		vars.Set("year", item.Year())
		english := item.Anime.TitleEnglish
		if english == "" {
			english = item.Anime.Title
		}
		japanese := item.Anime.TitleJapanese
		if japanese == "" {
			japanese = item.Anime.Title
		}
		vars.Set("title_english", english)
		vars.Set("title_japanese", japanese)
	}
	return vars
}
