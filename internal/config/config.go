// Package config handles loading the application configuration.
// It supports these sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Plain environment variables with built-in defaults
//
// Unlike a server, the generator runs fine with no configuration at all,
// so a missing file path is not an error.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env selects the log format: text for "dev", JSON otherwise.
	Env string `yaml:"env" env:"ENV" env-default:"prod" validate:"oneof=dev staging prod"`

	// LogLevel is the minimum slog level. Logs go to stderr.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`

	Report `yaml:"report"`
}

// Report holds presentation settings for the report card.
type Report struct {
	// LabelWidth is the column the ": " separator is aligned to.
	LabelWidth int `yaml:"label_width" env:"REPORT_LABEL_WIDTH" env-default:"15" validate:"min=1,max=64"`
}

// Load resolves the config path from CONFIG_PATH or the --config flag in
// args, reads it if present, and validates the result.
func Load(args []string) (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.NewFlagSet("report-card", flag.ContinueOnError)
		flags.SetOutput(io.Discard)
		path := flags.String("config", "", "Path to the configuration YAML file")
		if err := flags.Parse(args); err != nil {
			return nil, fmt.Errorf("config.Load: parse flags: %w", err)
		}
		configPath = *path
	}

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", configPath, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: invalid config: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load over the process arguments; it exits the program if
// the configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}
	return cfg
}
