// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"BACKEND_BASE_URL":          "https://api.example.com",
		"BACKEND_MEDIA_PATH_PREFIX": "/api/journals/media",
		"BACKEND_REQUEST_TIMEOUT":   "30s",

		"STORAGE_DB_DSN": "/home/user/.journal/session.db",

		"WORKERS_BADGE_REFRESH_INTERVAL": "45s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "/api/journals/media", cfg.Backend.MediaPathPrefix)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)

	assert.Equal(t, "/home/user/.journal/session.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 45*time.Second, cfg.Workers.BadgeRefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"BACKEND_BASE_URL": "http://localhost:8080",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	assert.Empty(t, cfg.Backend.MediaPathPrefix)
	assert.Zero(t, cfg.Backend.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.BadgeRefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"BACKEND_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
