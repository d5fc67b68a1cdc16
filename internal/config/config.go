// Package config loads careerfit settings from a YAML file, a .env file,
// CAREERFIT_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/careerfit/internal/llm"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. CAREERFIT_LLM_API_KEY.
const EnvPrefix = "CAREERFIT"

// Config is the fully resolved application configuration.
type Config struct {
	DB      string        `mapstructure:"db"`
	Bank    string        `mapstructure:"bank"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Log     LogConfig     `mapstructure:"log"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	LLM     llm.Config    `mapstructure:"llm"`
}

// ArchiveConfig controls the history of finished assessments.
type ArchiveConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Keep is how many reports survive pruning after each save; 0 keeps all.
	Keep int `mapstructure:"keep"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type ScoringConfig struct {
	AnswerKey string `mapstructure:"answer_key"`
}

// New returns a viper instance with defaults and environment binding in
// place. Callers bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("db", "")
	v.SetDefault("bank", "")
	v.SetDefault("archive.enabled", true)
	v.SetDefault("archive.keep", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("scoring.answer_key", "legacy")

	r := llm.DefaultRetry()
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("llm.retry.max_attempts", r.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", r.InitialWait)
	v.SetDefault("llm.retry.max_wait", r.MaxWait)
	v.SetDefault("llm.retry.multiplier", r.Multiplier)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env (if present), then the config file at path, or
// config.yaml from the user config dir when path is empty, and decodes
// the result. A missing default config file is not an error; a missing
// explicit one is.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if !cfg.LLM.Enabled() {
		if found, ok := llm.DiscoverConfig(); ok {
			found.Timeout, found.Retry = cfg.LLM.Timeout, cfg.LLM.Retry
			cfg.LLM = found
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := scoring.AnswerKeyByName(c.Scoring.AnswerKey); err != nil {
		errs = append(errs, fmt.Errorf("scoring.answer_key: %w", err))
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	if c.Archive.Keep < 0 {
		errs = append(errs, fmt.Errorf("archive.keep: must not be negative"))
	}
	if c.LLM.Timeout < 0 {
		errs = append(errs, fmt.Errorf("llm.timeout: must not be negative"))
	}
	if err := c.LLM.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Scorer returns the scorer configuration with the selected answer key.
func (c *Config) Scorer() scoring.Config {
	sc := scoring.DefaultConfig()
	if key, err := scoring.AnswerKeyByName(c.Scoring.AnswerKey); err == nil {
		sc.AnswerKey = key
	}
	return sc
}

// DBPath returns the configured archive path or the default one, creating
// its directory.
func (c *Config) DBPath() (string, error) {
	if c.DB == "" {
		return store.DefaultDBPath()
	}
	return c.DB, store.EnsureDir(c.DB)
}

// LogFile returns the configured log file or careerfit.log in the data dir.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := store.DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "careerfit.log"), nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/careerfit, falling back to
// ~/.config/careerfit.
func DefaultConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "careerfit"), nil
}
