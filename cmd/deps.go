package cmd

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/podsni/TMDB-media/config"
	"github.com/podsni/TMDB-media/pkg/jikan"
	"github.com/podsni/TMDB-media/pkg/manager"
	"github.com/podsni/TMDB-media/pkg/settings"
	"github.com/podsni/TMDB-media/pkg/tmdb"
	"github.com/podsni/TMDB-media/pkg/vault"
)

// buildManager wires a MediaManager from the active configuration. The
// returned closer releases the settings database.
func buildManager() (manager.MediaManager, func() error, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return manager.MediaManager{}, nil, fmt.Errorf("failed to read configurations: %w", err)
	}

	tmdbURL := url.URL{
		Scheme: cfg.TMDB.Scheme,
		Host:   cfg.TMDB.Host,
		Path:   "/3",
	}

	tmdbOpts := []tmdb.ClientOption{}
	if cfg.TMDB.Language != "" {
		tmdbOpts = append(tmdbOpts, tmdb.WithLanguage(cfg.TMDB.Language))
	}

	tmdbClient, err := tmdb.New(tmdbURL.String(), cfg.TMDB.APIKey, tmdbOpts...)
	if err != nil {
		return manager.MediaManager{}, nil, fmt.Errorf("failed to create tmdb client: %w", err)
	}

	jikanURL := url.URL{
		Scheme: cfg.Jikan.Scheme,
		Host:   cfg.Jikan.Host,
		Path:   "/v4",
	}

	jikanOpts := []jikan.ClientOption{}
	if !cfg.Jikan.Enabled {
		jikanOpts = append(jikanOpts, jikan.Disabled())
	}

	jikanClient, err := jikan.New(jikanURL.String(), jikanOpts...)
	if err != nil {
		return manager.MediaManager{}, nil, fmt.Errorf("failed to create jikan client: %w", err)
	}

	settingsPath := cfg.Vault.SettingsPath
	if !filepath.IsAbs(settingsPath) {
		settingsPath = filepath.Join(cfg.Vault.Dir, settingsPath)
	}

	store, err := settings.Open(settingsPath)
	if err != nil {
		return manager.MediaManager{}, nil, err
	}

	fs := vault.NewDirVault(cfg.Vault.Dir)
	return manager.New(tmdbClient, jikanClient, fs, store), store.Close, nil
}
