package internal

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tunegrab/tunegrab/internal/api"
	"github.com/tunegrab/tunegrab/internal/download"
)

// TunegrabConfig is the struct used to contain the various user config
// supplied by file or environment. The YouTube API key is deliberately
// not marked as required: its absence is reported per-request so the
// service can still come up and explain what is missing.
type TunegrabConfig struct {
	YoutubeAPIKey string          `yaml:"youtube_api_key" env:"YOUTUBE_API_KEY"`
	Rest          api.RestConfig  `yaml:"api"`
	Download      download.Config `yaml:"download"`
}

// LoadFromFile reads a YAML configuration file into the config,
// overlaying any values also present in the environment.
func (config *TunegrabConfig) LoadFromFile(configPath string) error {
	if err := cleanenv.ReadConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to load configuration from %s - %w", configPath, err)
	}

	return nil
}

// LoadFromEnv populates the config from environment variables alone.
func (config *TunegrabConfig) LoadFromEnv() error {
	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("failed to load configuration from environment - %w", err)
	}

	return nil
}
