// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final [ClientConfig], defaults already applied,
// satisfies the invariants the client relies on at startup.
func (cfg *ClientConfig) validate() error {
	parsed, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ErrInvalidBackendConfigs
	}
	if !strings.HasPrefix(cfg.Backend.MediaPathPrefix, "/") {
		return ErrInvalidBackendConfigs
	}
	if cfg.Backend.RequestTimeout <= 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.BadgeRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
