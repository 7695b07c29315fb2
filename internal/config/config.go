// Package config loads application configuration from YAML files,
// environment variables, and .env files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App     App     `mapstructure:"app"`
	Sources Sources `mapstructure:"sources"`
	Docs    Docs    `mapstructure:"docs"`
	Output  Output  `mapstructure:"output"`
	Logging Logging `mapstructure:"logging"`
}

// App holds general application configuration.
type App struct {
	Debug bool `mapstructure:"debug"`
}

// Sources toggles the individual data collaborators.
type Sources struct {
	News     bool `mapstructure:"news"`
	Research bool `mapstructure:"research"`
	Social   bool `mapstructure:"social"`
}

// Docs holds local document extraction configuration.
type Docs struct {
	Directory string `mapstructure:"directory"` // Empty disables document extraction
}

// Output holds report output configuration.
type Output struct {
	Directory string `mapstructure:"directory"`
}

// Logging holds logging configuration.
type Logging struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration with the following precedence: explicit config
// file, ./trendwatch.yaml, $HOME/.trendwatch.yaml, TRENDWATCH_* environment
// variables, then defaults. A .env file is honored when present.
func Load(cfgFile string) (*Config, error) {
	// Best effort; missing .env files are fine.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("trendwatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("TRENDWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.debug", false)
	v.SetDefault("sources.news", true)
	v.SetDefault("sources.research", true)
	v.SetDefault("sources.social", true)
	v.SetDefault("docs.directory", "")
	v.SetDefault("output.directory", "reports")
	v.SetDefault("logging.level", "info")
}
