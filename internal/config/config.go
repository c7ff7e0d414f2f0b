package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"headsup-analyzer/internal/util"
)

// range sources
const (
	RangeSourceFile     = "file"
	RangeSourcePostgres = "postgres"
)

// Config provides configuration for the heads-up analyzer
type Config struct {
	loaded         bool
	Addr           string `yaml:"addr" envconfig:"addr"`
	RangeSource    string `yaml:"rangeSource" envconfig:"range_source"`
	RangesFile     string `yaml:"rangesFile" envconfig:"ranges_file"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Equity         struct {
		Iterations int `yaml:"iterations"`
		Workers    int `yaml:"workers"`
	} `yaml:"equity"`
	Log struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" split_words:"true"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	c := Config{
		Addr:           ":5000",
		RangeSource:    RangeSourceFile,
		RangesFile:     "range.json",
		PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath: "./sql",
	}

	c.Equity.Iterations = 10000
	c.Equity.Workers = 4
	c.Log.Level = "info"
	c.Log.Format = "text"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A .env file is applied to the environment first, then the YAML file is read over
// the defaults, then HEADSUP_* environment variables win.
// The YAML file is optional unless HEADSUP_CONFIG_FILE names one explicitly.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	c := DefaultConfig()

	_, explicit := os.LookupEnv("HEADSUP_CONFIG_FILE")
	configFile := util.Getenv("HEADSUP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := envconfig.Process("headsup", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
