package store

import (
	"context"

	"github.com/kolpakovda/go-journal-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the auth session between client launches.
type SessionRepository interface {
	SaveSession(ctx context.Context, token models.Token) error
	GetSession(ctx context.Context) (models.Token, error)
	DeleteSession(ctx context.Context) error
}
