package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/internal/store"
	"github.com/kolpakovda/go-journal-client/internal/validators"
	"github.com/kolpakovda/go-journal-client/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	validator  validators.Validator

	mu   sync.RWMutex
	user models.User
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    serverAdapter,
		validator:  validators.NewCredentialsValidator(),
	}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	creds := validators.Credentials{Email: email, Password: password}
	if err := a.validator.Validate(ctx, creds, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.User{}, err
	}

	token, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.User{}, ErrWrongCredentials
		}
		return models.User{}, fmt.Errorf("login on server: %w", mapAdapterError(err))
	}

	return a.installSession(ctx, token)
}

func (a *clientAuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	creds := validators.Credentials{Name: name, Email: email, Password: password}
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	token, err := a.adapter.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		return models.User{}, fmt.Errorf("register on server: %w", mapAdapterError(err))
	}

	return a.installSession(ctx, token)
}

// installSession persists the fresh token and fetches the profile behind it.
// A failed session save is not fatal: the login stands for this run, only
// the restore on next launch is lost.
func (a *clientAuthService) installSession(ctx context.Context, token models.Token) (models.User, error) {
	_ = a.localStore.Sessions.SaveSession(ctx, token)

	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch profile after auth: %w", mapAdapterError(err))
	}

	a.setUser(user)
	return user, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	token, err := a.localStore.Sessions.GetSession(ctx)
	if err != nil {
		return models.User{}, err
	}

	a.adapter.SetToken(token.SignedString)

	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		// the persisted token was rejected, drop it so the next launch
		// goes straight to the login form
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden) {
			_ = a.localStore.Sessions.DeleteSession(ctx)
			a.adapter.SetToken("")
			return models.User{}, ErrSessionExpired
		}
		return models.User{}, fmt.Errorf("validate restored session: %w", mapAdapterError(err))
	}

	a.setUser(user)
	return user, nil
}

func (a *clientAuthService) RefreshUser(ctx context.Context) (models.User, error) {
	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.setUser(user)
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	a.setUser(models.User{})

	if err := a.localStore.Sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete persisted session: %w", err)
	}
	return nil
}

func (a *clientAuthService) User() models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *clientAuthService) setUser(user models.User) {
	a.mu.Lock()
	a.user = user
	a.mu.Unlock()
}
