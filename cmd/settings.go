package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/podsni/TMDB-media/pkg/logger"
	"github.com/podsni/TMDB-media/pkg/settings"
)

// settingsCmd groups folder maintenance commands
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "maintain stored note settings",
}

// syncFoldersCmd repoints category folders under the default base folder
var syncFoldersCmd = &cobra.Command{
	Use:   "sync-folders",
	Short: "repoint category folders under the default base folder",
	Run: func(cmd *cobra.Command, args []string) {
		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())
		updated, err := m.SyncFolders(ctx)
		if err != nil {
			log.Fatalf("failed to sync folders: %v", err)
		}

		printFolders(updated)
	},
}

// resetFoldersCmd restores the stock folder configuration
var resetFoldersCmd = &cobra.Command{
	Use:   "reset-folders",
	Short: "restore the stock folder configuration",
	Run: func(cmd *cobra.Command, args []string) {
		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal(err)
		}
		defer closeStore()

		ctx := logger.WithCtx(context.Background(), logger.Get())
		updated, err := m.ResetFolders(ctx)
		if err != nil {
			log.Fatalf("failed to reset folders: %v", err)
		}

		printFolders(updated)
	},
}

func printFolders(s settings.Settings) {
	fmt.Printf("default: %s\nmovies:  %s\ntv:      %s\nanime:   %s\n",
		s.DefaultFolder, s.MovieFolder, s.TVFolder, s.AnimeFolder)
}

func init() {
	settingsCmd.AddCommand(syncFoldersCmd)
	settingsCmd.AddCommand(resetFoldersCmd)
	rootCmd.AddCommand(settingsCmd)
}
