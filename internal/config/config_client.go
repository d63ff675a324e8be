package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied by [GetClientConfig] when a field is missing from every
// configuration source.
const (
	DefaultBaseURL              = "http://localhost:8080"
	DefaultMediaPathPrefix      = "/api/journals/media"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultSessionDSN           = "journal-session.db"
	DefaultBadgeRefreshInterval = 30 * time.Second
)

// ClientApp holds application-level client settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string shown in the build info view.
	Version string
}

// ClientBackend holds network settings used by the client transport layer.
type ClientBackend struct {
	// BaseURL is the backend origin without a trailing slash.
	BaseURL string
	// MediaPathPrefix is the media path under BaseURL, with a leading and
	// without a trailing slash.
	MediaPathPrefix string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local session database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path holding the persisted session.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// BadgeRefreshInterval defines how often the pending friend-request
	// badge is refreshed.
	BadgeRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Backend contains the remote API origin and timeouts.
	Backend ClientBackend
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills defaults for anything left unset,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Backend: ClientBackend{
			BaseURL:         cfg.Backend.BaseURL,
			MediaPathPrefix: cfg.Backend.MediaPathPrefix,
			RequestTimeout:  cfg.Backend.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{BadgeRefreshInterval: cfg.Workers.BadgeRefreshInterval},
	}
	clientCfg.fillDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) fillDefaults() {
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = DefaultBaseURL
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")

	if cfg.Backend.MediaPathPrefix == "" {
		cfg.Backend.MediaPathPrefix = DefaultMediaPathPrefix
	}
	if !strings.HasPrefix(cfg.Backend.MediaPathPrefix, "/") {
		cfg.Backend.MediaPathPrefix = "/" + cfg.Backend.MediaPathPrefix
	}
	cfg.Backend.MediaPathPrefix = strings.TrimRight(cfg.Backend.MediaPathPrefix, "/")

	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultSessionDSN
	}
	if cfg.Workers.BadgeRefreshInterval <= 0 {
		cfg.Workers.BadgeRefreshInterval = DefaultBadgeRefreshInterval
	}
}
