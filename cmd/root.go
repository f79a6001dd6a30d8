package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medianotes",
	Short: "medianotes cli",
	Long:  `Search movie, tv, and anime catalogs and turn results into YAML front-matter notes in a vault.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MEDIANOTES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.language", "en-US")

	viper.SetDefault("jikan.scheme", "https")
	viper.SetDefault("jikan.host", "api.jikan.moe")
	viper.SetDefault("jikan.enabled", true)

	viper.SetDefault("vault.dir", ".")
	viper.SetDefault("vault.settingsPath", "medianotes.sqlite")

	viper.SetDefault("server.port", 8080)
}
