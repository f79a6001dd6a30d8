package jikan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAnime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime", r.URL.Path)
		assert.Equal(t, "bebop", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		w.Write([]byte(`{"data":[{"mal_id":1,"title":"Cowboy Bebop","score":8.75,"year":1998}]}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	results, err := c.SearchAnime(context.Background(), "bebop")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].MalID)
	require.NotNil(t, results[0].Score)
	assert.InDelta(t, 8.75, *results[0].Score, 0.001)
	require.NotNil(t, results[0].Year)
	assert.Equal(t, 1998, *results[0].Year)
}

func TestGetAnimeDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime/1/full", r.URL.Path)

		w.Write([]byte(`{"data":{"mal_id":1,"title":"Cowboy Bebop","genres":[{"mal_id":1,"name":"Action"}],"studios":[{"mal_id":14,"name":"Sunrise"}]}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	anime, err := c.GetAnimeDetails(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, anime.Genres, 1)
	assert.Equal(t, "Action", anime.Genres[0].Name)
	require.Len(t, anime.Studios, 1)
	assert.Equal(t, "Sunrise", anime.Studios[0].Name)
}

func TestTopAnime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top/anime", r.URL.Path)
		assert.Equal(t, "bypopularity", r.URL.Query().Get("type"))
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	// An empty filter defaults to popularity.
	_, err = c.TopAnime(context.Background(), "")
	require.NoError(t, err)
}

func TestSeasonalAnime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seasons/2024/winter", r.URL.Path)
		w.Write([]byte(`{"data":[{"mal_id":52991,"title":"Sousou no Frieren"}]}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	results, err := c.SeasonalAnime(context.Background(), 2024, SeasonWinter)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Sousou no Frieren", results[0].Title)
}

func TestDisabled(t *testing.T) {
	c, err := New("", Disabled())
	require.NoError(t, err)

	_, err = c.SearchAnime(context.Background(), "bebop")
	require.ErrorIs(t, err, ErrDisabled)

	_, err = c.TopAnime(context.Background(), TopAiring)
	require.ErrorIs(t, err, ErrDisabled)
	assert.False(t, c.Enabled())

	enabled, err := New("")
	require.NoError(t, err)
	assert.True(t, enabled.Enabled())
}

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, SeasonWinter},
		{time.February, SeasonWinter},
		{time.March, SeasonSpring},
		{time.May, SeasonSpring},
		{time.June, SeasonSummer},
		{time.August, SeasonSummer},
		{time.September, SeasonFall},
		{time.November, SeasonFall},
		{time.December, SeasonWinter},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			year, season := CurrentSeason(time.Date(2024, tt.month, 15, 0, 0, 0, 0, time.UTC))
			assert.Equal(t, 2024, year)
			assert.Equal(t, tt.want, season)
		})
	}
}

func TestImageURLFallback(t *testing.T) {
	a := Anime{}
	assert.Empty(t, a.ImageURL())

	a.Images.WebP.LargeImageURL = "https://cdn/webp-large.webp"
	assert.Equal(t, "https://cdn/webp-large.webp", a.ImageURL())

	a.Images.JPG.LargeImageURL = "https://cdn/jpg-large.jpg"
	assert.Equal(t, "https://cdn/jpg-large.jpg", a.ImageURL())
}
