// Package config loads the command line tool's layered configuration.
//
// Precedence, highest first: command line flags that were set, HZ_*
// environment variables (a .env file in the working directory is loaded
// first), the YAML config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. HZ_SEARCH_HORIZON.
const EnvPrefix = "HZ"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration tree.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Factory FactoryConfig `mapstructure:"factory"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// SearchConfig drives the valve planner.
type SearchConfig struct {
	Horizon int    `mapstructure:"horizon" validate:"min=0"`
	Actors  int    `mapstructure:"actors" validate:"min=1,max=2"`
	Start   string `mapstructure:"start" validate:"required"`

	// MaxExpansions caps every search; 0 means unlimited.
	MaxExpansions int `mapstructure:"max_expansions" validate:"min=0"`
}

// FactoryConfig drives the blueprint planner.
type FactoryConfig struct {
	Horizon int   `mapstructure:"horizon" validate:"min=0"`
	Target  int64 `mapstructure:"target" validate:"min=0"`

	// First keeps only the first N blueprints; 0 keeps all.
	First int `mapstructure:"first" validate:"min=0"`

	// Workers bounds parallel searches; 0 means one per CPU.
	Workers int `mapstructure:"workers" validate:"min=0"`

	// Mode selects the aggregate: quality (Σ (id+1)·geodes) or top
	// (product of the Top best results).
	Mode string `mapstructure:"mode" validate:"required,oneof=quality top"`
	Top  int    `mapstructure:"top" validate:"min=1"`
}

// MetricsConfig selects where collected metrics are written.
type MetricsConfig struct {
	// File, when set, receives the registry in text format on exit.
	File string `mapstructure:"file"`
}

// Binding ties a config key to a command line flag.
type Binding struct {
	Key  string
	Flag *pflag.Flag
}

// Load reads configuration from path, or from horizon.yaml in the usual
// places when path is empty, applies bindings and validates the result.
func Load(path string, bindings ...Binding) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("horizon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.config/horizon")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, b := range bindings {
		if b.Flag == nil {
			continue
		}
		if err := v.BindPFlag(b.Key, b.Flag); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", b.Key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
