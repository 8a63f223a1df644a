// Package config loads server configuration from the environment.
// A .env file in the working directory is loaded first when present;
// real environment variables take precedence over it.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

// Config is the full server configuration.
type Config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	CorpusFile  string `env:"CORPUS_FILE"`
	LexiconFile string `env:"LEXICON_FILE"`
	LexiconDB   string `env:"LEXICON_DB"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	OpeningSeconds int `env:"OPENING_SECONDS" envDefault:"30"`
	RoundSeconds   int `env:"ROUND_SECONDS" envDefault:"60"`
	BonusSeconds   int `env:"BONUS_SECONDS" envDefault:"10"`

	TickInterval   time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.OpeningSeconds <= 0 || c.RoundSeconds <= 0 || c.BonusSeconds <= 0 {
		errs = append(errs, errors.New("OPENING_SECONDS, ROUND_SECONDS and BONUS_SECONDS must be positive"))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, errors.New("TICK_INTERVAL must be positive"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	return errors.Join(errs...)
}

// Settings returns the game timings.
func (c Config) Settings() game.Settings {
	return game.Settings{
		OpeningSeconds: c.OpeningSeconds,
		RoundSeconds:   c.RoundSeconds,
		BonusSeconds:   c.BonusSeconds,
	}
}
