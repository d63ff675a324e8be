package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_FillDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.fillDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.Backend.BaseURL)
	assert.Equal(t, DefaultMediaPathPrefix, cfg.Backend.MediaPathPrefix)
	assert.Equal(t, DefaultRequestTimeout, cfg.Backend.RequestTimeout)
	assert.Equal(t, DefaultSessionDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultBadgeRefreshInterval, cfg.Workers.BadgeRefreshInterval)
}

func TestClientConfig_FillDefaults_NormalizesValues(t *testing.T) {
	cfg := &ClientConfig{
		Backend: ClientBackend{
			BaseURL:         "https://api.example.com/",
			MediaPathPrefix: "api/journals/media/",
		},
	}
	cfg.fillDefaults()

	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "/api/journals/media", cfg.Backend.MediaPathPrefix)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{}
	valid.fillDefaults()
	require.NoError(t, valid.validate())

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:    "missing scheme in base url",
			mutate:  func(cfg *ClientConfig) { cfg.Backend.BaseURL = "api.example.com" },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Backend.RequestTimeout = 0 },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "empty session dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero badge interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.BadgeRefreshInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ClientConfig{
				Backend: ClientBackend{
					BaseURL:         "https://api.example.com",
					MediaPathPrefix: "/api/journals/media",
					RequestTimeout:  15 * time.Second,
				},
				Storage: ClientStorage{DB: ClientDB{DSN: "session.db"}},
				Workers: ClientWorkers{BadgeRefreshInterval: 30 * time.Second},
			}
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestConfigBuilder_MergePriority(t *testing.T) {
	// earlier sources win for non-zero fields: mergo.Merge does not
	// overwrite fields already set by a previous source
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Backend: Backend{BaseURL: "https://first.example.com"}},
		&StructuredConfig{Backend: Backend{
			BaseURL:        "https://second.example.com",
			RequestTimeout: time.Minute,
		}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://first.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, time.Minute, cfg.Backend.RequestTimeout)
}
