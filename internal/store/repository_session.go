package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, token models.Token) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveSession, token.UserID, token.SignedString)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", token.UserID).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Token, error) {
	log := logger.FromContext(ctx)

	var token models.Token
	row := s.DB.QueryRowContext(ctx, getSession)

	scanErr := row.Scan(&token.UserID, &token.SignedString)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Token{}, ErrSessionNotFound
		}
		log.Err(scanErr).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Token{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return token, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, deleteSession)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
