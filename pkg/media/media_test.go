package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podsni/TMDB-media/pkg/jikan"
	"github.com/podsni/TMDB-media/pkg/tmdb"
)

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"movie", "tv", "anime"} {
		kind, err := ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(kind))
	}

	_, err := ParseKind("podcast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "podcast")
}

func TestItemAccessors(t *testing.T) {
	t.Run("movie", func(t *testing.T) {
		item := FromMovie(&tmdb.Movie{ID: 603, Title: "The Matrix", Overview: "Simulation.", ReleaseDate: "1999-03-30"})
		assert.Equal(t, KindMovie, item.Kind)
		assert.Equal(t, "The Matrix", item.Title())
		assert.Equal(t, "Simulation.", item.Overview())
		assert.Equal(t, 603, item.ID())
		assert.Equal(t, "1999", item.Year())
	})

	t.Run("tv", func(t *testing.T) {
		item := FromTVShow(&tmdb.TVShow{ID: 1399, Name: "Game of Thrones", FirstAirDate: "2011-04-17"})
		assert.Equal(t, "Game of Thrones", item.Title())
		assert.Equal(t, 1399, item.ID())
		assert.Equal(t, "2011", item.Year())
	})

	t.Run("anime", func(t *testing.T) {
		year := 1998
		item := FromAnime(&jikan.Anime{MalID: 1, Title: "Cowboy Bebop", Synopsis: "Bounty hunters.", Year: &year})
		assert.Equal(t, "Cowboy Bebop", item.Title())
		assert.Equal(t, 1, item.ID())
		assert.Equal(t, "1998", item.Year())
	})

	t.Run("anime without year", func(t *testing.T) {
		item := FromAnime(&jikan.Anime{Title: "Unsung"})
		assert.Equal(t, "N/A", item.Year())
	})
}

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := ParseDate("2021-09-15")
		require.NoError(t, err)
		assert.Equal(t, 2021, got.Year())
	})

	t.Run("rfc3339 timestamp", func(t *testing.T) {
		got, err := ParseDate("1998-04-03T00:00:00+00:00")
		require.NoError(t, err)
		assert.Equal(t, time.April, got.Month())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseDate("")
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("next tuesday")
		require.Error(t, err)
	})
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, "2021", YearOf("2021-09-15"))
	assert.Equal(t, "N/A", YearOf(""))
	assert.Equal(t, "N/A", YearOf("not a date"))
}

func TestISODate(t *testing.T) {
	got := ISODate(time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, "2024-03-09", got)
}
