package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// UI modes.
const (
	UIConsole = "console"
	UITUI     = "tui"
)

// Config holds the application configuration.
type Config struct {
	SaveDir    string `env:"DUNGEON_SAVE_DIR" envDefault:".saves" validate:"required"`
	SaveSlot   string `env:"DUNGEON_SAVE_SLOT" envDefault:"current" validate:"required,excludesall=/\\"`
	ScoreDB    string `env:"DUNGEON_SCORE_DB" envDefault:".saves/scores.db" validate:"required"`
	WorldFile  string `env:"DUNGEON_WORLD_FILE"`
	PlayerName string `env:"DUNGEON_PLAYER_NAME"`
	UI         string `env:"DUNGEON_UI" envDefault:"console" validate:"oneof=console tui"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn warning error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogFile   string `env:"LOG_FILE"`
}

var validate = validator.New()

// LoadConfig loads the configuration from environment variables, reading a
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the configuration from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
