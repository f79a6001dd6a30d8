package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/podsni/TMDB-media/pkg/logger"
)

// searchTVCmd represents the tv search command
var searchTVCmd = &cobra.Command{
	Use:   "tv",
	Short: "search for a tv show",
	Run: func(cmd *cobra.Command, args []string) {
		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())
		items, err := m.SearchTVShows(ctx, searchQuery)
		if err != nil {
			log.Fatalf("failed to search tv shows: %v", err)
		}

		printItems(items)
	},
}

// searchAllCmd fans one query out to every catalog
var searchAllCmd = &cobra.Command{
	Use:   "all",
	Short: "search every catalog at once",
	Run: func(cmd *cobra.Command, args []string) {
		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())
		results, err := m.SearchAll(ctx, searchQuery)
		if err != nil {
			log.Fatalf("failed to search: %v", err)
		}

		printItems(results.Movies)
		printItems(results.TV)
		printItems(results.Anime)
	},
}

func init() {
	searchCmd.AddCommand(searchTVCmd)
	searchCmd.AddCommand(searchAllCmd)
}
