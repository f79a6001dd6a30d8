package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/podsni/TMDB-media/pkg/jikan"
	"github.com/podsni/TMDB-media/pkg/logger"
)

var topFilter string

// searchAnimeCmd represents the anime search command
var searchAnimeCmd = &cobra.Command{
	Use:   "anime",
	Short: "search for an anime",
	Run: func(cmd *cobra.Command, args []string) {
		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())
		items, err := m.SearchAnime(ctx, searchQuery)
		if err != nil {
			log.Fatalf("failed to search anime: %v", err)
		}

		printItems(items)
	},
}

// animeCmd groups anime discovery commands
var animeCmd = &cobra.Command{
	Use:   "anime",
	Short: "discover anime",
}

// topAnimeCmd lists top-ranked anime
var topAnimeCmd = &cobra.Command{
	Use:   "top",
	Short: "list top-ranked anime",
	Run: func(cmd *cobra.Command, args []string) {
		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())
		items, err := m.TopAnime(ctx, jikan.TopFilter(topFilter))
		if err != nil {
			log.Fatalf("failed to list top anime: %v", err)
		}

		printItems(items)
	},
}

// seasonAnimeCmd lists the anime airing this season
var seasonAnimeCmd = &cobra.Command{
	Use:   "season",
	Short: "list anime airing this season",
	Run: func(cmd *cobra.Command, args []string) {
		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())
		items, err := m.CurrentSeasonAnime(ctx)
		if err != nil {
			log.Fatalf("failed to list seasonal anime: %v", err)
		}

		printItems(items)
	},
}

func init() {
	searchCmd.AddCommand(searchAnimeCmd)

	topAnimeCmd.Flags().StringVar(&topFilter, "filter", "", "ranking filter: airing, upcoming, bypopularity, favorite")
	animeCmd.AddCommand(topAnimeCmd)
	animeCmd.AddCommand(seasonAnimeCmd)
	rootCmd.AddCommand(animeCmd)
}
