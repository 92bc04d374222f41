package config

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/logging"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable read by [Load].
const Prefix = "CLUE_"

var ErrInvalid = errors.NewSentinel("invalid configuration")

// Config is the environment configuration of the clue command.
type Config struct {
	// Seed reproduces a case. Zero means a fresh cryptographic seed for every case.
	Seed     int64  `env:"SEED"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	// RollingDelay is the pause between printed runes of narration.
	RollingDelay   time.Duration `env:"ROLLING_DELAY" envDefault:"15ms"`
	NoColor        bool          `env:"NO_COLOR"`
	StartingDonuts int           `env:"STARTING_DONUTS" envDefault:"10"`
}

// Load reads envFiles into the process environment and parses the configuration from it. Missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(err, "load env file", slog.String("file", file))
		}
	}
	return Parse(nil)
}

// Parse parses the configuration from environ. A nil environ means the process environment.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: environ,
		Prefix:      Prefix,
	}); err != nil {
		return Config{}, errors.Wrap(errors.Join(ErrInvalid, err), "parse env")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, errors.Wrap(ErrInvalid, "unknown log level", slog.String("level", c.LogLevel)))
	}
	if c.RollingDelay < 0 {
		errs = append(errs, errors.Wrap(ErrInvalid, "negative rolling delay", slog.Duration("delay", c.RollingDelay)))
	}
	if c.StartingDonuts < 0 {
		errs = append(errs, errors.Wrap(ErrInvalid, "negative starting donuts",
			slog.Int("donuts", c.StartingDonuts)))
	}
	return errors.Join(errs...)
}

// Level is the parsed LogLevel.
func (c Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}
