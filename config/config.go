package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TMDB   TMDB   `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Jikan  Jikan  `json:"jikan" yaml:"jikan" mapstructure:"jikan"`
	Vault  Vault  `json:"vault" yaml:"vault" mapstructure:"vault"`
	Server Server `json:"server" yaml:"server" mapstructure:"server"`
}

type TMDB struct {
	Scheme   string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host     string `json:"host" yaml:"host" mapstructure:"host"`
	APIKey   string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	Language string `json:"language" yaml:"language" mapstructure:"language"`
}

type Jikan struct {
	Scheme  string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host    string `json:"host" yaml:"host" mapstructure:"host"`
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
}

// Vault points at the directory notes are written into. Settings live in a
// sqlite database alongside the notes unless a path is given.
type Vault struct {
	Dir          string `json:"dir" yaml:"dir" mapstructure:"dir" validate:"required"`
	SettingsPath string `json:"settingsPath" yaml:"settingsPath" mapstructure:"settingsPath"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	err := validator.New().Struct(c)
	return c, err
}
