// Package config provides configuration loading and structs for the Hondana server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	Chat    ChatConfig    `yaml:"chat"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds MongoDB connection settings.
type StorageConfig struct {
	MongoURL              string `yaml:"mongo_url"`
	Database              string `yaml:"database"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`
}

// ConnectTimeout returns the connection timeout as a duration.
func (s *StorageConfig) ConnectTimeout() time.Duration {
	return time.Duration(s.ConnectTimeoutSeconds) * time.Second
}

// CatalogConfig holds collection names and limits for catalog queries.
type CatalogConfig struct {
	CategoriesCollection string `yaml:"categories_collection"`
	RecommendCollection  string `yaml:"recommend_collection"`
	RecommendLimit       int    `yaml:"recommend_limit"`
}

// ChatConfig holds settings for the chat router's external collaborators.
// SelfURL is the base URL of this service's own category endpoint, called
// over HTTP so chat answers reuse exactly the same validation and formatting
// as direct category requests.
type ChatConfig struct {
	SelfURL            string `yaml:"self_url"`
	OCREndpoint        string `yaml:"ocr_endpoint"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	OCRTimeoutSeconds  int    `yaml:"ocr_timeout_seconds"`
}

// HTTPTimeout returns the self-call timeout as a duration.
func (c *ChatConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// OCRTimeout returns the OCR call timeout as a duration.
func (c *ChatConfig) OCRTimeout() time.Duration {
	return time.Duration(c.OCRTimeoutSeconds) * time.Second
}

// Load reads and parses the config file at path, layers the documented
// environment overrides (PORT, MONGO_URL, DB_NAME) over it, and fills the
// rest with defaults. A missing file is not an error: env-only deployments
// are common, so an empty or absent path yields environment plus defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// fall through to defaults + env
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	applyEnv(&cfg)
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// applyEnv overrides file values with the environment variables the service
// documents for container deployments.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MONGO_URL"); v != "" {
		cfg.Storage.MongoURL = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Storage.Database = v
	}
}
