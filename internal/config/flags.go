package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b/-backend backend base URL (e.g. "https://api.example.com")
//	-media-prefix server path prefix for journal media
//	-d session database file path
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-badge-interval friend-request badge refresh interval (e.g., "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendBaseURL string
	var mediaPathPrefix string
	var sessionDSN string
	var requestTimeout time.Duration
	var badgeInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&backendBaseURL, "b", "", "Backend base URL")
	flag.StringVar(&backendBaseURL, "backend", "", "Backend base URL (alias)")
	flag.StringVar(&mediaPathPrefix, "media-prefix", "", "Server path prefix for journal media")
	flag.StringVar(&sessionDSN, "d", "", "Session database file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&badgeInterval, "badge-interval", 0, "Badge refresh interval (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			BaseURL:         backendBaseURL,
			MediaPathPrefix: mediaPathPrefix,
			RequestTimeout:  requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: sessionDSN,
			},
		},
		Workers: Workers{
			BadgeRefreshInterval: badgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
