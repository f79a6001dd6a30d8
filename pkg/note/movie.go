package note

import (
	"strconv"
	"strings"

	"github.com/podsni/TMDB-media/pkg/media"
	"github.com/podsni/TMDB-media/pkg/tmdb"
)

func (a Adapter) movieVariables(m *tmdb.Movie, det *tmdb.MovieDetails) *Variables {
	genresList := listPlaceholder
	genresMarkdown := "Genres will be loaded separately"
	directorList := listPlaceholder
	writerList := listPlaceholder
	studioList := listPlaceholder
	actorsList := listPlaceholder
	duration := "TBD"
	premiereDate := m.ReleaseDate
	if premiereDate == "" {
		premiereDate = "N/A"
	}

	if det != nil {
		if len(det.Genres) > 0 {
			genresList = yamlList(genreNames(det.Genres))
			genresMarkdown = markdownList(genreNames(det.Genres))
		}

		directors, writers := crewByRole(det.Credits.Crew)
		if len(directors) > 0 {
			directorList = yamlList(directors)
		}
		if len(writers) > 0 {
			writerList = yamlList(writers)
		}
		if actors := topBilledCast(det.Credits.Cast); len(actors) > 0 {
			actorsList = yamlList(actors)
		}

		if len(det.ProductionCompanies) > 0 {
			names := make([]string, len(det.ProductionCompanies))
			for i, c := range det.ProductionCompanies {
				names[i] = c.Name
			}
			studioList = yamlList(names)
		}

		if det.Runtime > 0 {
			duration = strconv.Itoa(det.Runtime) + " min"
		}

		if det.ReleaseDate != "" {
			premiereDate = isoOr(det.ReleaseDate, premiereDate)
		}
	}

	overview := m.Overview
	if overview == "" {
		overview = "No overview available"
	}

	vars := NewVariables()
	vars.Set("title", m.Title)
	vars.Set("year", media.YearOf(m.ReleaseDate))
	vars.Set("overview", overview)
	vars.Set("rating", formatTenths(m.VoteAverage))
	vars.Set("vote_count", strconv.Itoa(m.VoteCount))
	vars.Set("release_date", isoOr(m.ReleaseDate, "N/A"))
	vars.Set("language", m.OriginalLanguage)
	vars.Set("original_title", m.OriginalTitle)
	vars.Set("popularity", formatTenths(m.Popularity))
	vars.Set("adult", yesNo(m.Adult))
	vars.Set("id", strconv.Itoa(m.ID))
	vars.Set("poster_url", tmdb.PosterURL(m.PosterPath))
	vars.Set("backdrop_url", tmdb.BackdropURL(m.BackdropPath))
	vars.Set("genres", genresMarkdown)
	vars.Set("genres_list", genresList)
	vars.Set("director_list", directorList)
	vars.Set("writer_list", writerList)
	vars.Set("studio_list", studioList)
	vars.Set("actors_list", actorsList)
	vars.Set("duration", duration)
	vars.Set("premiere_date", premiereDate)
	vars.Set("current_date", a.currentDate())
	return vars
}

func genreNames(genres []tmdb.Genre) []string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return names
}

// crewByRole splits crew into directors and writers. "Writer" and
// "Screenplay" both count as writing credits.
func crewByRole(crew []tmdb.CrewMember) (directors, writers []string) {
	for _, member := range crew {
		switch member.Job {
		case "Director":
			directors = append(directors, member.Name)
		case "Writer", "Screenplay":
			writers = append(writers, member.Name)
		}
	}
	return directors, writers
}

// topBilledCast keeps the first five cast entries in the catalog's own
// billing order.
func topBilledCast(cast []tmdb.CastMember) []string {
	if len(cast) > 5 {
		cast = cast[:5]
	}
	names := make([]string, len(cast))
	for i, c := range cast {
		names[i] = c.Name
	}
	return names
}

func markdownList(names []string) string {
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = "- " + n
	}
	return strings.Join(lines, "\n")
}
