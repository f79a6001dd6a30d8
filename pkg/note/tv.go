package note

import (
	"strconv"
	"strings"

	"github.com/podsni/TMDB-media/pkg/media"
	"github.com/podsni/TMDB-media/pkg/tmdb"
)

func (a Adapter) tvVariables(tv *tmdb.TVShow, det *tmdb.TVShowDetails) *Variables {
	year := media.YearOf(tv.FirstAirDate)
	yearRange := year
	firstAirISO := isoOr(tv.FirstAirDate, "unknown")
	lastAirISO := "unknown"
	isAiring := false

	genresList := listPlaceholder
	createdByList := listPlaceholder
	networksList := listPlaceholder
	numberOfEpisodes := 0
	episodeRunTime := 24

	if det != nil {
		if len(det.Genres) > 0 {
			genresList = yamlList(genreNames(det.Genres))
		}
		if len(det.CreatedBy) > 0 {
			names := make([]string, len(det.CreatedBy))
			for i, c := range det.CreatedBy {
				names[i] = c.Name
			}
			createdByList = yamlList(names)
		}
		if len(det.Networks) > 0 {
			names := make([]string, len(det.Networks))
			for i, n := range det.Networks {
				names[i] = n.Name
			}
			networksList = yamlList(names)
		}

		numberOfEpisodes = det.NumberOfEpisodes
		if len(det.EpisodeRunTime) > 0 {
			episodeRunTime = det.EpisodeRunTime[0]
		}

		status := strings.ToLower(det.Status)
		isAiring = status == "returning series" || status == "in production"

		if first, err := media.ParseDate(det.FirstAirDate); err == nil {
			firstYear := strconv.Itoa(first.Year())
			if last, err := media.ParseDate(det.LastAirDate); err == nil {
				yearRange = firstYear + "-" + strconv.Itoa(last.Year())
			} else if isAiring {
				yearRange = firstYear + "-present"
			} else {
				yearRange = firstYear + "-" + firstYear
			}
		}
		if last, err := media.ParseDate(det.LastAirDate); err == nil {
			lastAirISO = media.ISODate(last)
		}
	}

	overview := tv.Overview
	if overview == "" {
		overview = "No overview available"
	}

	vars := NewVariables()
	vars.Set("name", tv.Name)
	vars.Set("year", year)
	vars.Set("year_range", yearRange)
	vars.Set("overview", overview)
	vars.Set("rating", formatTenths(tv.VoteAverage))
	vars.Set("vote_count", strconv.Itoa(tv.VoteCount))
	vars.Set("first_air_date_formatted", firstAirISO)
	vars.Set("last_air_date_formatted", lastAirISO)
	vars.Set("language", tv.OriginalLanguage)
	vars.Set("original_name", tv.OriginalName)
	vars.Set("popularity", formatTenths(tv.Popularity))
	vars.Set("adult", yesNo(tv.Adult))
	vars.Set("origin_countries", strings.Join(tv.OriginCountry, ", "))
	vars.Set("id", strconv.Itoa(tv.ID))
	vars.Set("is_airing", strconv.FormatBool(isAiring))
	vars.Set("number_of_episodes", strconv.Itoa(numberOfEpisodes))
	vars.Set("episode_run_time", strconv.Itoa(episodeRunTime))
	vars.Set("poster_url", tmdb.PosterURL(tv.PosterPath))
	vars.Set("backdrop_url", tmdb.BackdropURL(tv.BackdropPath))
	vars.Set("genres_list", genresList)
	vars.Set("created_by_list", createdByList)
	vars.Set("networks_list", networksList)
	vars.Set("current_date", a.currentDate())
	return vars
}
