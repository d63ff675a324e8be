package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/models"
)

type clientUserService struct {
	adapter adapter.ServerAdapter
}

func NewClientUserService(serverAdapter adapter.ServerAdapter) ClientUserService {
	return &clientUserService{adapter: serverAdapter}
}

func (u *clientUserService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	updated, err := u.adapter.UpdateProfile(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", mapAdapterError(err))
	}
	return updated, nil
}

func (u *clientUserService) UploadPhoto(ctx context.Context, file adapter.FileUpload) (models.User, error) {
	if file.Filename == "" || file.Content == nil {
		return models.User{}, ErrNoFilesProvided
	}

	updated, err := u.adapter.UploadProfilePhoto(ctx, file.Filename, file.Content)
	if err != nil {
		return models.User{}, fmt.Errorf("upload profile photo: %w", mapAdapterError(err))
	}
	return updated, nil
}

func (u *clientUserService) Search(ctx context.Context, query string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	users, err := u.adapter.SearchUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", mapAdapterError(err))
	}
	return users, nil
}
