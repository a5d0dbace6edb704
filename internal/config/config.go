// Package config holds the client configuration loaded from YAML and
// environment variables with a predictable priority:
//  1. explicit path passed to MustLoad/Load;
//  2. the CONFIG_PATH environment variable;
//  3. ./local.yaml in the working directory;
//  4. environment variables / defaults only.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root client configuration.
type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig points the client at the auction service.
type ServerConfig struct {
	URL     string        `yaml:"url"     env:"AUCTIONHUB_SERVER_URL"  env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout" env:"AUCTIONHUB_HTTP_TIMEOUT" env-default:"30s"`
}

// StorageConfig locates the local credential database.
type StorageConfig struct {
	Path string `yaml:"path" env:"AUCTIONHUB_DB_PATH" env-default:"auctionhub-client.db"`
}

// MustLoad loads the configuration or terminates the process.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// Load loads the configuration following the package priority order.
// A missing file is not an error unless it was requested explicitly.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		if _, err := os.Stat("local.yaml"); err == nil {
			path = "local.yaml"
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from env: %w", err)
	}
	return &cfg, nil
}
