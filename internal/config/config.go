package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	// Driver is one of: sqlite, file, postgres, memory
	Driver string `yaml:"driver"`
	// Path is the database/file location for the sqlite and file drivers
	Path string `yaml:"path"`
	// DSN is the connection string for the postgres driver
	DSN string `yaml:"dsn"`
	// KeyPrefix namespaces every stored key; empty means the default
	KeyPrefix string `yaml:"key_prefix"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "lovesync.db"
	}

	return &cfg, nil
}
