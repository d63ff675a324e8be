package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/internal/utils"
	"github.com/kolpakovda/go-journal-client/internal/validators"
	"github.com/kolpakovda/go-journal-client/models"
)

// MaxUploadSoftLimit is the per-upload size above which the UI warns before
// sending. The server stays the source of truth for acceptance.
const MaxUploadSoftLimit int64 = 25 << 20

type clientJournalService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientJournalService(serverAdapter adapter.ServerAdapter) ClientJournalService {
	return &clientJournalService{
		adapter:   serverAdapter,
		validator: validators.NewJournalEntryValidator(),
	}
}

func (j *clientJournalService) Load(ctx context.Context, viewerID, ownerID int64) ([]models.JournalEntry, error) {
	var (
		entries []models.JournalEntry
		err     error
	)

	if viewerID == ownerID {
		entries, err = j.adapter.JournalsByUser(ctx, ownerID)
	} else {
		entries, err = j.adapter.PublicJournalsByUser(ctx, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("load journals of user %d: %w", ownerID, mapAdapterError(err))
	}

	return entries, nil
}

func (j *clientJournalService) Entry(ctx context.Context, journalID int64) (models.JournalEntry, error) {
	entry, err := j.adapter.Journal(ctx, journalID)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("load journal %d: %w", journalID, mapAdapterError(err))
	}
	return entry, nil
}

func (j *clientJournalService) Create(ctx context.Context, userID int64, entry models.JournalEntry) (models.JournalEntry, error) {
	if err := j.validator.Validate(ctx, entry); err != nil {
		return models.JournalEntry{}, err
	}

	created, err := j.adapter.CreateJournal(ctx, userID, entry)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("create journal: %w", mapAdapterError(err))
	}
	return created, nil
}

func (j *clientJournalService) Update(ctx context.Context, journalID int64, entry models.JournalEntry) (models.JournalEntry, error) {
	if err := j.validator.Validate(ctx, entry); err != nil {
		return models.JournalEntry{}, err
	}

	updated, err := j.adapter.UpdateJournal(ctx, journalID, entry)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("update journal %d: %w", journalID, mapAdapterError(err))
	}
	return updated, nil
}

func (j *clientJournalService) Delete(ctx context.Context, journalID int64) error {
	if err := j.adapter.DeleteJournal(ctx, journalID); err != nil {
		return fmt.Errorf("delete journal %d: %w", journalID, mapAdapterError(err))
	}
	return nil
}

func (j *clientJournalService) Publish(ctx context.Context, journalID int64) error {
	if err := j.adapter.PublishJournal(ctx, journalID); err != nil {
		return fmt.Errorf("publish journal %d: %w", journalID, mapAdapterError(err))
	}
	return nil
}

func (j *clientJournalService) Unpublish(ctx context.Context, journalID int64) error {
	if err := j.adapter.UnpublishJournal(ctx, journalID); err != nil {
		return fmt.Errorf("unpublish journal %d: %w", journalID, mapAdapterError(err))
	}
	return nil
}

func (j *clientJournalService) AddFiles(ctx context.Context, journalID int64, files []adapter.FileUpload) (models.JournalEntry, error) {
	if len(files) == 0 {
		return models.JournalEntry{}, ErrNoFilesProvided
	}

	if err := j.adapter.UploadJournalFiles(ctx, journalID, files); err != nil {
		return models.JournalEntry{}, fmt.Errorf("upload files to journal %d: %w", journalID, mapAdapterError(err))
	}

	// re-fetch so the list can be patched with the server-assigned media URLs
	return j.Entry(ctx, journalID)
}

func (j *clientJournalService) DeleteFile(ctx context.Context, journalID int64, ref string) (models.JournalEntry, error) {
	filename := utils.FilenameFromURL(ref)
	if filename == "" {
		return models.JournalEntry{}, fmt.Errorf("no filename derivable from %q", ref)
	}

	if err := j.adapter.DeleteJournalFile(ctx, journalID, filename); err != nil {
		return models.JournalEntry{}, fmt.Errorf("delete file %s of journal %d: %w", filename, journalID, mapAdapterError(err))
	}

	return j.Entry(ctx, journalID)
}

func (j *clientJournalService) Published(ctx context.Context, query string) ([]models.JournalEntry, error) {
	var (
		entries []models.JournalEntry
		err     error
	)

	if strings.TrimSpace(query) == "" {
		entries, err = j.adapter.PublishedJournals(ctx)
	} else {
		entries, err = j.adapter.SearchPublishedJournals(ctx, strings.TrimSpace(query))
	}
	if err != nil {
		return nil, fmt.Errorf("load published journals: %w", mapAdapterError(err))
	}

	return entries, nil
}

// OversizedFilenames lists the files whose size exceeds the soft upload
// limit. Files with unknown size are never reported.
func OversizedFilenames(files []adapter.FileUpload) []string {
	var oversized []string
	for _, f := range files {
		if f.Size > MaxUploadSoftLimit {
			oversized = append(oversized, f.Filename)
		}
	}
	return oversized
}
