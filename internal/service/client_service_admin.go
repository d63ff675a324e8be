package service

import (
	"context"
	"fmt"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/models"
)

type clientAdminService struct {
	adapter adapter.ServerAdapter
}

func NewClientAdminService(serverAdapter adapter.ServerAdapter) ClientAdminService {
	return &clientAdminService{adapter: serverAdapter}
}

func (a *clientAdminService) Users(ctx context.Context) ([]models.User, error) {
	users, err := a.adapter.AllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load all users: %w", mapAdapterError(err))
	}
	return users, nil
}

func (a *clientAdminService) Promote(ctx context.Context, userID int64) error {
	if err := a.adapter.PromoteUser(ctx, userID); err != nil {
		return fmt.Errorf("promote user %d: %w", userID, mapAdapterError(err))
	}
	return nil
}

func (a *clientAdminService) ToggleStatus(ctx context.Context, userID int64) error {
	if err := a.adapter.ToggleUserStatus(ctx, userID); err != nil {
		return fmt.Errorf("toggle status of user %d: %w", userID, mapAdapterError(err))
	}
	return nil
}

func (a *clientAdminService) DeleteUser(ctx context.Context, userID int64) error {
	if err := a.adapter.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user %d: %w", userID, mapAdapterError(err))
	}
	return nil
}

func (a *clientAdminService) Journals(ctx context.Context) ([]models.JournalEntry, error) {
	entries, err := a.adapter.AdminJournals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load all journals: %w", mapAdapterError(err))
	}
	return entries, nil
}

func (a *clientAdminService) DeleteJournal(ctx context.Context, journalID int64) error {
	if err := a.adapter.AdminDeleteJournal(ctx, journalID); err != nil {
		return fmt.Errorf("delete journal %d: %w", journalID, mapAdapterError(err))
	}
	return nil
}

func (a *clientAdminService) PublishedJournals(ctx context.Context) ([]models.JournalEntry, error) {
	entries, err := a.adapter.AdminPublishedJournals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ever-published journals: %w", mapAdapterError(err))
	}
	return entries, nil
}

func (a *clientAdminService) Hide(ctx context.Context, journalID int64) error {
	if err := a.adapter.HideJournal(ctx, journalID); err != nil {
		return fmt.Errorf("hide journal %d: %w", journalID, mapAdapterError(err))
	}
	return nil
}

func (a *clientAdminService) Restore(ctx context.Context, journalID int64) error {
	if err := a.adapter.RestoreJournal(ctx, journalID); err != nil {
		return fmt.Errorf("restore journal %d: %w", journalID, mapAdapterError(err))
	}
	return nil
}
