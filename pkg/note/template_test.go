package note

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podsni/TMDB-media/pkg/jikan"
	"github.com/podsni/TMDB-media/pkg/media"
	"github.com/podsni/TMDB-media/pkg/tmdb"
)

func TestSubstitute(t *testing.T) {
	vars := NewVariables()
	vars.Set("title", "Dune")
	vars.Set("year", "2021")

	t.Run("replaces known placeholders", func(t *testing.T) {
		got := Substitute("{{title}} ({{year}})", vars)
		assert.Equal(t, "Dune (2021)", got)
	})

	t.Run("unknown placeholders pass through", func(t *testing.T) {
		got := Substitute("{{title}} by {{director}}", vars)
		assert.Equal(t, "Dune by {{director}}", got)
	})

	t.Run("repeated placeholders", func(t *testing.T) {
		got := Substitute("{{title}}/{{title}}", vars)
		assert.Equal(t, "Dune/Dune", got)
	})

	t.Run("malformed tokens are literal", func(t *testing.T) {
		got := Substitute("{title} {{1bad}} {{}}", vars)
		assert.Equal(t, "{title} {{1bad}} {{}}", got)
	})
}

func TestStripLegacyArtifacts(t *testing.T) {
	doc := "title: x\n![poster](http://img)\n**bold**\n## Header\n---\n*Data from TMDB*\n"
	got := stripLegacyArtifacts(doc)

	assert.NotContains(t, got, "![")
	assert.NotContains(t, got, "**")
	assert.NotContains(t, got, "##")
	assert.NotContains(t, got, "*Data from")
	assert.Contains(t, got, "title: x")
}

func TestRewriteTagBlock(t *testing.T) {
	doc := "type: movie\ntags:\n  - tmdb/movie\n  - stale/tag\ncategories:\n  - \"[[Movies]]\""

	tests := []struct {
		category Category
		wantTag  string
	}{
		{CategoryMovie, "mediaDB/tv/movie"},
		{CategoryTV, "mediaDB/tv/series"},
		{CategoryAnime, "mediaDB/tv/anime"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := rewriteTagBlock(doc, tt.category)
			assert.Contains(t, got, "tags:\n  - "+tt.wantTag+"\ncategories:")
			assert.NotContains(t, got, "stale/tag")
		})
	}
}

func TestCleanYAMLFormatting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "sentinel values collapse to empty",
			in:   "premiere: N/A\nairedFrom: unknown",
			want: "premiere:\nairedFrom:",
		},
		{
			name: "structural empties keep a trailing space",
			in:   "subType:\nlastWatched:",
			want: "subType: \nlastWatched: ",
		},
		{
			name: "empty arrays survive",
			in:   "streamingServices: []\nactors: []",
			want: "streamingServices: []\nactors: []",
		},
		{
			name: "value with spaces is quoted",
			in:   "title: Jack Reacher",
			want: `title: "Jack Reacher"`,
		},
		{
			name: "single word stays bare",
			in:   "title: Seven",
			want: "title: Seven",
		},
		{
			name: "leading digit is quoted",
			in:   "rating: 42",
			want: `rating: "42"`,
		},
		{
			name: "hyphenated rating is quoted",
			in:   "rating: R-17+",
			want: `rating: "R-17+"`,
		},
		{
			name: "already quoted is untouched",
			in:   `title: "Jack Reacher"`,
			want: `title: "Jack Reacher"`,
		},
		{
			name: "empty quotable key keeps the next line",
			in:   "englishTitle: \nyear: 1999\nduration: \nrating: PG-13 - Teens 13 or older",
			want: "englishTitle: \nyear: 1999\nduration: \nrating: \"PG-13 - Teens 13 or older\"",
		},
		{
			name: "quoted value does not absorb its neighbour",
			in:   "title: \"The Matrix\"\nyear: 1999",
			want: "title: \"The Matrix\"\nyear: 1999",
		},
		{
			name: "unquotable keys are untouched",
			in:   "url: https://example.com/x",
			want: "url: https://example.com/x",
		},
		{
			name: "blank line runs collapse",
			in:   "a: 1\n\n\n\nb: 2",
			want: "a: 1\n\nb: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanYAMLFormatting(tt.in)
			assert.Equal(t, tt.want, got)

			// Cleaning is stable under reapplication.
			assert.Equal(t, got, cleanYAMLFormatting(got))
		})
	}
}

func TestQuoteFirst(t *testing.T) {
	t.Run("quotes the first bare match only", func(t *testing.T) {
		doc := "title: Seven\ntitle: Eight"
		got := quoteFirst(doc, titleLine)
		assert.Equal(t, "title: \"Seven\"\ntitle: Eight", got)
	})

	t.Run("escapes embedded quotes", func(t *testing.T) {
		doc := `title: The "Real" Story`
		got := quoteFirst(doc, titleLine)
		assert.Equal(t, `title: "The \"Real\" Story"`, got)
	})

	t.Run("no match leaves document alone", func(t *testing.T) {
		doc := "plot: nothing here"
		assert.Equal(t, doc, quoteFirst(doc, titleLine))
	})

	t.Run("empty value never reaches the next line", func(t *testing.T) {
		doc := "title: \nyear: 1999"
		assert.Equal(t, doc, quoteFirst(doc, titleLine))
	})
}

func TestEngineRenderMovie(t *testing.T) {
	movie := &tmdb.Movie{
		ID:            603,
		Title:         "The Matrix",
		OriginalTitle: "The Matrix",
		Overview:      "A hacker discovers reality is a simulation.",
		ReleaseDate:   "1999-03-30",
		VoteAverage:   8.22,
		VoteCount:     24821,
	}

	vars := fixedAdapter().Normalize(media.FromMovie(movie), nil)
	doc := NewEngine().Render(DefaultMovieTemplate, vars, media.FromMovie(movie))

	// Movie titles are always quoted, even single words.
	assert.Contains(t, doc, `title: "The Matrix"`)
	assert.Contains(t, doc, "tags:\n  - mediaDB/tv/movie\ncategories:")
	assert.Contains(t, doc, "year: 1999")
	assert.Contains(t, doc, `plot: "A hacker discovers reality is a simulation."`)

	// Every placeholder in the stock template must resolve.
	assert.NotContains(t, doc, "{{")

	snaps.MatchSnapshot(t, doc)
}

func TestEngineRenderTV(t *testing.T) {
	tv := &tmdb.TVShow{
		ID:           1399,
		Name:         "Game of Thrones",
		Overview:     "Noble families vie for the Iron Throne.",
		FirstAirDate: "2011-04-17",
		VoteAverage:  8.45,
	}
	detail := &tmdb.TVShowDetails{
		TVShow:           *tv,
		LastAirDate:      "2019-05-19",
		Status:           "Ended",
		NumberOfEpisodes: 73,
		EpisodeRunTime:   []int{60},
		Networks:         []tmdb.Network{{ID: 49, Name: "HBO"}},
	}

	item := media.FromTVShow(tv)
	vars := fixedAdapter().Normalize(item, &media.Detail{TV: detail})
	doc := NewEngine().Render(DefaultTVTemplate, vars, item)

	assert.Contains(t, doc, `title: "Game of Thrones"`)
	assert.Contains(t, doc, "year: 2011-2019")
	assert.Contains(t, doc, "episodes: 73")
	assert.Contains(t, doc, `duration: "60 min"`)
	assert.Contains(t, doc, "airing: false")
	assert.Contains(t, doc, "tags:\n  - mediaDB/tv/series\ncategories:")
	assert.NotContains(t, doc, "{{")

	snaps.MatchSnapshot(t, doc)
}

func TestEngineRenderAnime(t *testing.T) {
	score := 8.67
	episodes := 26
	anime := &jikan.Anime{
		MalID:         457,
		URL:           "https://myanimelist.net/anime/457/Mushishi",
		Title:         "Mushishi",
		TitleJapanese: "蟲師",
		Synopsis:      "Ginko wanders between mushi and men.",
		Episodes:      &episodes,
		Score:         &score,
		Airing:        false,
		Rating:        "PG-13 - Teens 13 or older",
	}

	item := media.FromAnime(anime)
	vars := fixedAdapter().Normalize(item, nil)
	doc := NewEngine().Render(DefaultAnimeTemplate, vars, item)

	// Anime titles follow plain minimal quoting: bare words stay bare.
	assert.Contains(t, doc, "title: Mushishi\n")
	require.NotContains(t, doc, `title: "Mushishi"`)

	assert.Contains(t, doc, `rating: "PG-13 - Teens 13 or older"`)
	assert.Contains(t, doc, "score: 8.67")
	assert.Contains(t, doc, "episodes: 26")
	assert.Contains(t, doc, "tags:\n  - mediaDB/tv/anime\ncategories:")

	// The stripped japanese title collapses to an empty scalar.
	assert.Contains(t, doc, "japaneseTitle: \n")

	snaps.MatchSnapshot(t, doc)
}

func TestRenderIsStable(t *testing.T) {
	movie := &tmdb.Movie{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30"}
	item := media.FromMovie(movie)
	vars := fixedAdapter().Normalize(item, nil)

	doc := NewEngine().Render(DefaultMovieTemplate, vars, item)

	// Re-cleaning an already rendered document changes nothing.
	assert.Equal(t, doc, cleanYAMLFormatting(doc))
	assert.False(t, strings.Contains(doc, "\n\n\n"))
}
