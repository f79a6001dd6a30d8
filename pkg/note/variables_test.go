package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podsni/TMDB-media/pkg/jikan"
	"github.com/podsni/TMDB-media/pkg/media"
	"github.com/podsni/TMDB-media/pkg/tmdb"
)

func fixedAdapter() Adapter {
	a := NewAdapter()
	a.Now = func() time.Time {
		return time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)
	}
	return a
}

func TestVariablesOrdering(t *testing.T) {
	vars := NewVariables()
	vars.Set("b", "2")
	vars.Set("a", "1")
	vars.Set("b", "3")

	assert.Equal(t, []string{"b", "a"}, vars.Keys())

	got, ok := vars.Get("b")
	require.True(t, ok)
	assert.Equal(t, "3", got)

	_, ok = vars.Get("missing")
	assert.False(t, ok)
}

func TestMovieVariablesWithoutDetail(t *testing.T) {
	movie := &tmdb.Movie{
		ID:          603,
		Title:       "The Matrix",
		ReleaseDate: "1999-03-30",
		VoteAverage: 8.22,
		VoteCount:   24821,
	}

	vars := fixedAdapter().Normalize(media.FromMovie(movie), nil)

	expect := map[string]string{
		"title":         "The Matrix",
		"year":          "1999",
		"overview":      "No overview available",
		"rating":        "8.2",
		"duration":      "TBD",
		"genres":        "Genres will be loaded separately",
		"genres_list":   "  - TBD",
		"director_list": "  - TBD",
		"actors_list":   "  - TBD",
		"premiere_date": "1999-03-30",
		"adult":         "No",
		"poster_url":    "",
		"current_date":  "2024-03-09",
	}
	for key, want := range expect {
		got, ok := vars.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestMovieVariablesWithDetail(t *testing.T) {
	movie := &tmdb.Movie{
		ID:          438631,
		Title:       "Dune",
		Overview:    "Paul Atreides travels to Arrakis.",
		ReleaseDate: "2021-09-15",
		PosterPath:  "/poster.jpg",
	}
	detail := &tmdb.MovieDetails{
		Movie:  *movie,
		Genres: []tmdb.Genre{{ID: 878, Name: "Science Fiction"}, {ID: 12, Name: "Adventure"}},
		Credits: tmdb.Credits{
			Crew: []tmdb.CrewMember{
				{Name: "Denis Villeneuve", Job: "Director"},
				{Name: "Jon Spaihts", Job: "Screenplay"},
				{Name: "Greig Fraser", Job: "Director of Photography"},
			},
			Cast: []tmdb.CastMember{
				{Name: "Timothée Chalamet"}, {Name: "Rebecca Ferguson"}, {Name: "Oscar Isaac"},
				{Name: "Josh Brolin"}, {Name: "Stellan Skarsgård"}, {Name: "Dave Bautista"},
			},
		},
		ProductionCompanies: []tmdb.Company{{ID: 1, Name: "Legendary Pictures"}},
		Runtime:             155,
	}

	vars := fixedAdapter().Normalize(media.FromMovie(movie), &media.Detail{Movie: detail})

	expect := map[string]string{
		"genres_list":   "  - Science Fiction\n  - Adventure",
		"genres":        "- Science Fiction\n- Adventure",
		"director_list": "  - Denis Villeneuve",
		"writer_list":   "  - Jon Spaihts",
		"studio_list":   "  - Legendary Pictures",
		"duration":      "155 min",
		"poster_url":    "https://image.tmdb.org/t/p/w500/poster.jpg",
	}
	for key, want := range expect {
		got, ok := vars.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	// Top billing cuts off after five names.
	actors, _ := vars.Get("actors_list")
	assert.NotContains(t, actors, "Dave Bautista")
	assert.Contains(t, actors, "Stellan Skarsgård")
}

func TestTVVariables(t *testing.T) {
	tv := &tmdb.TVShow{
		ID:           1399,
		Name:         "Game of Thrones",
		FirstAirDate: "2011-04-17",
	}

	t.Run("without detail", func(t *testing.T) {
		vars := fixedAdapter().Normalize(media.FromTVShow(tv), nil)

		expect := map[string]string{
			"year":                     "2011",
			"year_range":               "2011",
			"number_of_episodes":       "0",
			"episode_run_time":         "24",
			"is_airing":                "false",
			"first_air_date_formatted": "2011-04-17",
			"last_air_date_formatted":  "unknown",
			"overview":                 "No overview available",
		}
		for key, want := range expect {
			got, ok := vars.Get(key)
			require.True(t, ok, key)
			assert.Equal(t, want, got, key)
		}
	})

	t.Run("ended series year range", func(t *testing.T) {
		detail := &tmdb.TVShowDetails{
			TVShow:      *tv,
			LastAirDate: "2019-05-19",
			Status:      "Ended",
		}
		vars := fixedAdapter().Normalize(media.FromTVShow(tv), &media.Detail{TV: detail})

		got, _ := vars.Get("year_range")
		assert.Equal(t, "2011-2019", got)
		airing, _ := vars.Get("is_airing")
		assert.Equal(t, "false", airing)
	})

	t.Run("returning series year range", func(t *testing.T) {
		detail := &tmdb.TVShowDetails{
			TVShow: *tv,
			Status: "Returning Series",
		}
		vars := fixedAdapter().Normalize(media.FromTVShow(tv), &media.Detail{TV: detail})

		got, _ := vars.Get("year_range")
		assert.Equal(t, "2011-present", got)
		airing, _ := vars.Get("is_airing")
		assert.Equal(t, "true", airing)
	})
}

func TestAnimeVariables(t *testing.T) {
	t.Run("optional numbers default to empty", func(t *testing.T) {
		anime := &jikan.Anime{MalID: 457, Title: "Mushishi"}
		vars := fixedAdapter().Normalize(media.FromAnime(anime), nil)

		for _, key := range []string{"score", "scored_by", "members", "favorites", "episodes", "year"} {
			got, ok := vars.Get(key)
			require.True(t, ok, key)
			assert.Empty(t, got, key)
		}

		synopsis, _ := vars.Get("synopsis")
		assert.Equal(t, "No synopsis available", synopsis)
		provider, _ := vars.Get("provider")
		assert.Equal(t, "Jikan", provider)
	})

	t.Run("score drops trailing zeroes", func(t *testing.T) {
		score := 8.50
		anime := &jikan.Anime{Title: "Monster", Score: &score}
		vars := fixedAdapter().Normalize(media.FromAnime(anime), nil)

		got, _ := vars.Get("score")
		assert.Equal(t, "8.5", got)
	})

	t.Run("non-ascii text is stripped", func(t *testing.T) {
		anime := &jikan.Anime{
			Title:         "Shingeki no Kyojin",
			TitleJapanese: "進撃の巨人",
			Synopsis:      "Humanity fights\nthe titans.",
		}
		vars := fixedAdapter().Normalize(media.FromAnime(anime), nil)

		japanese, _ := vars.Get("title_japanese")
		assert.Empty(t, japanese)

		synopsis, _ := vars.Get("synopsis")
		assert.Equal(t, "Humanity fights the titans.", synopsis)
	})

	t.Run("missing english title falls back", func(t *testing.T) {
		anime := &jikan.Anime{Title: "Mushishi"}
		vars := fixedAdapter().Normalize(media.FromAnime(anime), nil)

		english, _ := vars.Get("title_english")
		assert.Equal(t, "Mushishi", english)
	})
}

func TestCleanValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Cowboy Bebop", want: "Cowboy Bebop"},
		{name: "newlines", in: "line one\nline two", want: "line one line two"},
		{name: "whitespace runs", in: "too   many\t spaces", want: "too many spaces"},
		{name: "non ascii stripped", in: "カウボーイビバップ", want: ""},
		{name: "mixed", in: "Bebop カウボーイ Cowboy", want: "Bebop Cowboy"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanValue(tt.in))
		})
	}
}
