package store

import (
	"context"
	"fmt"

	"github.com/kolpakovda/go-journal-client/internal/config"
	"github.com/kolpakovda/go-journal-client/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// passed around the service layer. Currently it holds only the session
// repository; additional repositories can be added here as the feature set
// grows.
type ClientStorages struct {
	// Sessions is the SQLite-backed repository persisting the login session
	// across client launches.
	Sessions SessionRepository
}

// NewClientStorages initialises the client storage layer: opens the SQLite
// file from cfg.DB.DSN (creating it on first launch), runs pending schema
// migrations and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Sessions: NewSessionRepository(db, logger),
	}, nil
}
