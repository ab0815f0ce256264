package config

import "fmt"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Storage.MongoURL == "" {
		cfg.Storage.MongoURL = "mongodb://localhost:27017"
	}
	if cfg.Storage.Database == "" {
		cfg.Storage.Database = "Products"
	}
	if cfg.Storage.ConnectTimeoutSeconds == 0 {
		cfg.Storage.ConnectTimeoutSeconds = 10
	}
	if cfg.Catalog.CategoriesCollection == "" {
		cfg.Catalog.CategoriesCollection = "Category"
	}
	if cfg.Catalog.RecommendCollection == "" {
		cfg.Catalog.RecommendCollection = "Books"
	}
	if cfg.Catalog.RecommendLimit == 0 {
		cfg.Catalog.RecommendLimit = 4
	}
	if cfg.Chat.SelfURL == "" {
		cfg.Chat.SelfURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if cfg.Chat.HTTPTimeoutSeconds == 0 {
		cfg.Chat.HTTPTimeoutSeconds = 15
	}
	if cfg.Chat.OCRTimeoutSeconds == 0 {
		cfg.Chat.OCRTimeoutSeconds = 30
	}
}
