package settings

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/podsni/TMDB-media/pkg/logger"
)

// Store persists settings between runs.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// SQLiteStore is the default Store, a single key-value table in a sqlite
// database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (and migrates) the settings database at path.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const (
	keyMovieTemplate        = "movieTemplate"
	keyTVTemplate           = "tvTemplate"
	keyAnimeTemplate        = "animeTemplate"
	keyFileNameTemplate     = "fileNameTemplate"
	keyAskForLocation       = "askForLocation"
	keyRememberLastLocation = "rememberLastLocation"
	keyAutoCreateFolder     = "autoCreateFolder"
	keyDefaultFolder        = "defaultFolder"
	keyMovieFolder          = "movieFolder"
	keyTVFolder             = "tvFolder"
	keyAnimeFolder          = "animeFolder"
	keyLastUsedMovieFolder  = "lastUsedMovieFolder"
	keyLastUsedTVFolder     = "lastUsedTVFolder"
	keyLastUsedAnimeFolder  = "lastUsedAnimeFolder"
)

// Load reads stored settings over the defaults; keys never written keep
// their default value. Templates carrying legacy markdown artifacts are
// replaced with the current defaults and persisted immediately.
func (s *SQLiteStore) Load(ctx context.Context) (Settings, error) {
	log := logger.FromCtx(ctx)

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	defer rows.Close()

	stored := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		stored[key] = value
	}
	if err := rows.Err(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	loaded := Defaults()
	getString := func(key string, target *string) {
		if v, ok := stored[key]; ok {
			*target = v
		}
	}
	getBool := func(key string, target *bool) {
		if v, ok := stored[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*target = parsed
			}
		}
	}

	getString(keyMovieTemplate, &loaded.MovieTemplate)
	getString(keyTVTemplate, &loaded.TVTemplate)
	getString(keyAnimeTemplate, &loaded.AnimeTemplate)
	getString(keyFileNameTemplate, &loaded.FileNameTemplate)
	getBool(keyAskForLocation, &loaded.AskForLocation)
	getBool(keyRememberLastLocation, &loaded.RememberLastLocation)
	getBool(keyAutoCreateFolder, &loaded.AutoCreateFolder)
	getString(keyDefaultFolder, &loaded.DefaultFolder)
	getString(keyMovieFolder, &loaded.MovieFolder)
	getString(keyTVFolder, &loaded.TVFolder)
	getString(keyAnimeFolder, &loaded.AnimeFolder)
	getString(keyLastUsedMovieFolder, &loaded.LastUsedMovieFolder)
	getString(keyLastUsedTVFolder, &loaded.LastUsedTVFolder)
	getString(keyLastUsedAnimeFolder, &loaded.LastUsedAnimeFolder)

	loaded, healed := healLegacyTemplates(loaded)
	if healed {
		log.Info("replaced legacy markdown templates with current defaults")
		if err := s.Save(ctx, loaded); err != nil {
			return Settings{}, err
		}
	}

	return loaded, nil
}

// Save writes every setting in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, settings Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin settings transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return fmt.Errorf("failed to prepare settings upsert: %w", err)
	}
	defer stmt.Close()

	pairs := map[string]string{
		keyMovieTemplate:        settings.MovieTemplate,
		keyTVTemplate:           settings.TVTemplate,
		keyAnimeTemplate:        settings.AnimeTemplate,
		keyFileNameTemplate:     settings.FileNameTemplate,
		keyAskForLocation:       strconv.FormatBool(settings.AskForLocation),
		keyRememberLastLocation: strconv.FormatBool(settings.RememberLastLocation),
		keyAutoCreateFolder:     strconv.FormatBool(settings.AutoCreateFolder),
		keyDefaultFolder:        settings.DefaultFolder,
		keyMovieFolder:          settings.MovieFolder,
		keyTVFolder:             settings.TVFolder,
		keyAnimeFolder:          settings.AnimeFolder,
		keyLastUsedMovieFolder:  settings.LastUsedMovieFolder,
		keyLastUsedTVFolder:     settings.LastUsedTVFolder,
		keyLastUsedAnimeFolder:  settings.LastUsedAnimeFolder,
	}

	for key, value := range pairs {
		if _, err := stmt.ExecContext(ctx, key, value); err != nil {
			return fmt.Errorf("failed to write setting %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}

	return nil
}
