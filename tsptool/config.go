package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every tsptool command.
type Config struct {
	Log     LogConfig  `mapstructure:"log"`
	Workers int        `mapstructure:"workers" validate:"min=1,max=256"`
	JSON    JSONConfig `mapstructure:"json"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// JSONConfig controls the documents written by convert.
type JSONConfig struct {
	Indent string `mapstructure:"indent"`
	// System stamps the host description into every converted document.
	System bool `mapstructure:"system"`
}

// loadConfig merges defaults, the config file, TSPTOOL_* environment
// variables and the explicit overrides, in increasing priority. An empty
// path searches for tsptool.{yaml,toml,json} and tolerates its absence.
func loadConfig(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("workers", min(runtime.NumCPU(), 256))
	v.SetDefault("json.indent", "\t")
	v.SetDefault("json.system", false)

	v.SetEnvPrefix("TSPTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	} else {
		v.SetConfigName("tsptool")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tsptool")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("fatal error config file: %w", err)
			}
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
