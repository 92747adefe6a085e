// SPDX-License-Identifier: MIT
// File: config.go
// Role: Layered run configuration (defaults < file < MOTIFNULL_* env < flags)
// unmarshalled into tagged structs and validated.

package config

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MOTIFNULL_ENSEMBLE_MEMBERS.
const EnvPrefix = "MOTIFNULL"

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all run configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Graph     GraphConfig     `mapstructure:"graph"`
	Census    CensusConfig    `mapstructure:"census"`
	Community CommunityConfig `mapstructure:"community"`
	Ensemble  EnsembleConfig  `mapstructure:"ensemble"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

type GraphConfig struct {
	Directed bool `mapstructure:"directed"`
}

type CensusConfig struct {
	Disconnected bool `mapstructure:"disconnected"`
}

type CommunityConfig struct {
	ErrorMargin   float64 `mapstructure:"error_margin" validate:"gte=0"`
	Refine        bool    `mapstructure:"refine"`
	MaxIterations int     `mapstructure:"max_iterations" validate:"min=1"`
}

type EnsembleConfig struct {
	Members      int    `mapstructure:"members" validate:"min=1"`
	Workers      int    `mapstructure:"workers" validate:"min=1"`
	Flip         int    `mapstructure:"flip" validate:"min=0"`
	Seed         uint64 `mapstructure:"seed"`
	Policy       string `mapstructure:"policy" validate:"oneof=standard selfloops domain"`
	DomainConfig string `mapstructure:"domain_config" validate:"required_if=Policy domain"`
}

// NewViper returns a viper instance carrying every default and the
// environment binding. Callers may bind flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("graph.directed", true)

	v.SetDefault("census.disconnected", false)

	v.SetDefault("community.error_margin", 1e-12)
	v.SetDefault("community.refine", true)
	v.SetDefault("community.max_iterations", 500)

	v.SetDefault("ensemble.members", 100)
	v.SetDefault("ensemble.workers", runtime.GOMAXPROCS(0))
	v.SetDefault("ensemble.flip", 100)
	v.SetDefault("ensemble.seed", 1)
	v.SetDefault("ensemble.policy", "standard")
	v.SetDefault("ensemble.domain_config", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

var validate = validator.New()

// Load reads path (when non-empty) into v, unmarshals and validates.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// Logger builds a zerolog logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.Log.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Str("service", "motifnull").Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "motifnull").Logger()
}
