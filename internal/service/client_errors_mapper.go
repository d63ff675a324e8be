// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package service

import (
	"errors"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Errors without a known mapping pass through unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied
	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFoundOnServer
	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerFailure
	}

	return err
}
