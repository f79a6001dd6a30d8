package cmd

import (
	"github.com/spf13/cobra"
)

var searchQuery string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search the metadata catalogs",
	Long:  `search the metadata catalogs`,
}

func init() {
	searchCmd.PersistentFlags().StringVarP(&searchQuery, "query", "q", "", "search query")
	_ = searchCmd.MarkPersistentFlagRequired("query")

	rootCmd.AddCommand(searchCmd)
}
