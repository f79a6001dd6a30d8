package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"fmt"
	"strings"

	"github.com/podsni/TMDB-media/pkg/logger"
)

var showGenres bool

// searchMovieCmd represents the movie search command
var searchMovieCmd = &cobra.Command{
	Use:   "movie",
	Short: "search for a movie",
	Run: func(cmd *cobra.Command, args []string) {
		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())
		items, err := m.SearchMovies(ctx, searchQuery)
		if err != nil {
			log.Fatalf("failed to search movies: %v", err)
		}

		printItems(items)

		if showGenres {
			for _, item := range items {
				names, err := m.MovieGenreNames(ctx, item.Movie.GenreIDs)
				if err != nil {
					log.Fatalf("failed to resolve genres: %v", err)
				}
				fmt.Printf("%8d  %s\n", item.ID(), strings.Join(names, ", "))
			}
		}
	},
}

func init() {
	searchMovieCmd.Flags().BoolVar(&showGenres, "genres", false, "resolve and print genre names per result")
	searchCmd.AddCommand(searchMovieCmd)
}
