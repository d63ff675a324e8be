package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	token := models.Token{SignedString: "signed-token", UserID: 42}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(token.UserID, token.SignedString).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSession(context.Background(), token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk io error"))

	err := repo.SaveSession(context.Background(), models.Token{UserID: 42})
	if err == nil || !strings.Contains(err.Error(), "failed to save session") {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
}

func TestGetSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"user_id", "token"}).
		AddRow(42, "signed-token")

	mock.ExpectQuery("SELECT user_id, token").WillReturnRows(rows)

	token, err := repo.GetSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", token.UserID)
	}
	if token.SignedString != "signed-token" {
		t.Errorf("expected signed-token, got %s", token.SignedString)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, token").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "token"}))

	_, err := repo.GetSession(context.Background())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnError(errors.New("database is locked"))

	err := repo.DeleteSession(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to delete session") {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
}
