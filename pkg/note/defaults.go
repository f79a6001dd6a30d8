package note

// DefaultFileNameTemplate names saved documents.
const DefaultFileNameTemplate = "{{title}} {{year}}"

// DefaultMovieTemplate is the stock YAML front-matter template for movies.
const DefaultMovieTemplate = `---
type: movie
subType:
title: {{title}}
englishTitle: {{original_title}}
year: {{year}}
dataSource: TMDB
url: https://www.themoviedb.org/movie/{{id}}
id: {{id}}
plot: {{overview}}
genres:
{{genres_list}}
director:
{{director_list}}
writer:
{{writer_list}}
studio:
{{studio_list}}
duration: {{duration}}
onlineRating: {{rating}}
actors:
{{actors_list}}
image: {{poster_url}}
released: true
streamingServices: []
premiere: {{premiere_date}}
watched: false
lastWatched:
personalRating: 0
tags:
  - tmdb/movie
categories:
  - "[[Movies]]"
created: {{current_date}}
---`

// DefaultTVTemplate is the stock YAML front-matter template for series.
const DefaultTVTemplate = `---
type: series
subType:
title: {{name}}
englishTitle: {{original_name}}
year: {{year_range}}
dataSource: TMDB
url: https://www.themoviedb.org/tv/{{id}}
id: {{id}}
plot: {{overview}}
genres:
{{genres_list}}
writer:
{{created_by_list}}
studio:
{{networks_list}}
episodes: {{number_of_episodes}}
duration: {{episode_run_time}} min
onlineRating: {{rating}}
actors: []
image: {{poster_url}}
released: true
streamingServices: []
airing: {{is_airing}}
airedFrom: {{first_air_date_formatted}}
airedTo: {{last_air_date_formatted}}
watched: false
lastWatched:
personalRating: 0
tags:
  - tmdb/series
categories:
  - "[[Series]]"
created: {{current_date}}
---`

// DefaultAnimeTemplate is the stock YAML front-matter template for anime.
const DefaultAnimeTemplate = `---
type: anime
subType:
title: {{title}}
englishTitle: {{title_english}}
japaneseTitle: {{title_japanese}}
year: {{year}}
dataSource: {{provider}}
url: {{url}}
mal_id: {{mal_id}}
plot: {{synopsis}}
genres:
{{genres_list}}
studio:
{{studios_list}}
producers:
{{producers_list}}
episodes: {{episodes}}
duration: {{duration}}
rating: {{rating}}
score: {{score}}
scored_by: {{scored_by}}
members: {{members}}
favorites: {{favorites}}
image: {{image_url}}
released: true
streamingServices: []
airing: {{airing}}
airedFrom: {{aired_from}}
airedTo: {{aired_to}}
watched: false
lastWatched:
personalRating: 0
tags:
  - tmdb/anime
categories:
  - "[[Anime]]"
created: {{current_date}}
---`

// DefaultTemplateFor returns the stock template for a record kind string
// ("movie", "tv", "anime"); unknown kinds get the movie template.
func DefaultTemplateFor(kind string) string {
	switch kind {
	case "tv":
		return DefaultTVTemplate
	case "anime":
		return DefaultAnimeTemplate
	default:
		return DefaultMovieTemplate
	}
}
