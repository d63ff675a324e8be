// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/internal/mock"
	"github.com/kolpakovda/go-journal-client/internal/store"
	"github.com/kolpakovda/go-journal-client/internal/validators"
	"github.com/kolpakovda/go-journal-client/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{Sessions: mockSessions}
	svc := NewClientAuthService(storages, mockAdapter).(*clientAuthService)

	return svc, mockAdapter, mockSessions
}

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token := models.Token{SignedString: "signed", UserID: 42}
	profile := models.User{ID: 42, Name: "Alice", Email: "alice@example.com"}

	mockAdapter.EXPECT().Login(ctx, "alice@example.com", "secret").Return(token, nil)
	mockSessions.EXPECT().SaveSession(ctx, token).Return(nil)
	mockAdapter.EXPECT().CurrentUser(ctx).Return(profile, nil)

	user, err := svc.Login(ctx, "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, profile, user)
	assert.Equal(t, profile, svc.User())
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "alice@example.com", "wrong").
		Return(models.Token{}, adapter.ErrUnauthorized)

	_, err := svc.Login(ctx, "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestClientAuthService_Login_SessionSaveFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token := models.Token{SignedString: "signed", UserID: 42}

	mockAdapter.EXPECT().Login(ctx, "alice@example.com", "secret").Return(token, nil)
	mockSessions.EXPECT().SaveSession(ctx, token).Return(errors.New("disk full"))
	mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{ID: 42}, nil)

	_, err := svc.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
}

func TestClientAuthService_Register_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, "Alice", "alice@example.com", "secret").
		Return(models.Token{}, adapter.ErrConflict)

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestClientAuthService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token := models.Token{SignedString: "persisted", UserID: 42}
	profile := models.User{ID: 42, Name: "Alice"}

	mockSessions.EXPECT().GetSession(ctx).Return(token, nil)
	mockAdapter.EXPECT().SetToken("persisted")
	mockAdapter.EXPECT().CurrentUser(ctx).Return(profile, nil)

	user, err := svc.RestoreSession(ctx)

	require.NoError(t, err)
	assert.Equal(t, profile, user)
}

func TestClientAuthService_RestoreSession_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().GetSession(ctx).Return(models.Token{}, store.ErrSessionNotFound)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestClientAuthService_RestoreSession_RejectedTokenIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token := models.Token{SignedString: "stale", UserID: 42}

	mockSessions.EXPECT().GetSession(ctx).Return(token, nil)
	mockAdapter.EXPECT().SetToken("stale")
	mockAdapter.EXPECT().CurrentUser(ctx).Return(models.User{}, adapter.ErrUnauthorized)
	mockSessions.EXPECT().DeleteSession(ctx).Return(nil)
	mockAdapter.EXPECT().SetToken("")

	_, err := svc.RestoreSession(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	svc.setUser(models.User{ID: 42})

	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().DeleteSession(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, models.User{}, svc.User())
}

func TestClientAuthService_Login_RejectsMalformedEmailLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	// no adapter expectations: the request never leaves the client
	_, err := svc.Login(context.Background(), "not-an-email", "secret")
	require.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestClientAuthService_Register_RejectsShortPasswordLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pin")
	require.ErrorIs(t, err, validators.ErrShortPassword)
}
