package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/podsni/TMDB-media/pkg/media"
)

// languageName turns an ISO 639-1 code from the catalog into a display name.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return display.English.Languages().Name(tag)
}

func printItems(items []media.Item) {
	if len(items) == 0 {
		fmt.Println("no results")
		return
	}

	for _, item := range items {
		switch item.Kind {
		case media.KindMovie:
			m := item.Movie
			fmt.Printf("%8d  %s (%s)  %.1f  %s votes  %s\n",
				m.ID, m.Title, item.Year(), m.VoteAverage, humanize.Comma(int64(m.VoteCount)), languageName(m.OriginalLanguage))
		case media.KindTV:
			tv := item.TV
			fmt.Printf("%8d  %s (%s)  %.1f  %s votes  %s\n",
				tv.ID, tv.Name, item.Year(), tv.VoteAverage, humanize.Comma(int64(tv.VoteCount)), languageName(tv.OriginalLanguage))
		case media.KindAnime:
			a := item.Anime
			score := "unrated"
			if a.Score != nil {
				score = fmt.Sprintf("%.1f", *a.Score)
			}
			members := ""
			if a.Members != nil {
				members = humanize.Comma(int64(*a.Members)) + " members"
			}
			fmt.Printf("%8d  %s (%s)  %s  %s\n", a.MalID, a.Title, item.Year(), score, members)
		}
	}
}
