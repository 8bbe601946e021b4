package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		API
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	// API holds the settings for the upstream ISBNdb endpoint.
	API struct {
		BaseURL   string
		AccessKey string        // resolved lazily through the fallback chain when empty
		Timeout   time.Duration // per-request HTTP timeout
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

const DefaultBaseURL = "http://isbndb.com/api"

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("isbndb_base_url", DefaultBaseURL)
	v.SetDefault("isbndb_access_key", "")
	v.SetDefault("isbndb_timeout", "10s")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		API: API{
			BaseURL:   v.GetString("ISBNDB_BASE_URL"),
			AccessKey: v.GetString("ISBNDB_ACCESS_KEY"),
			Timeout:   v.GetDuration("ISBNDB_TIMEOUT"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
