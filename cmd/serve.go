package cmd

import (
	"github.com/podsni/TMDB-media/config"
	"github.com/podsni/TMDB-media/pkg/logger"
	"github.com/podsni/TMDB-media/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the note server",
	Long:  `start the note server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, closeStore, err := buildManager()
		if err != nil {
			log.Fatal("failed to wire manager", zap.Error(err))
		}
		defer closeStore()

		for _, notice := range m.ValidateConfiguration() {
			log.Warn(notice)
		}

		srv := server.New(log, m)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
