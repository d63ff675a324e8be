package validators

import (
	"context"
	"fmt"

	"github.com/kolpakovda/go-journal-client/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldTitle targets the entry title.
	FieldTitle = "title"

	// FieldDate targets the calendar date string of the entry.
	FieldDate = "date"
)

// JournalEntryValidator checks entries before they are sent to the backend.
type JournalEntryValidator struct{}

func NewJournalEntryValidator() *JournalEntryValidator {
	return &JournalEntryValidator{}
}

// Validate implements [Validator] for [models.JournalEntry] values. With no
// field names given, every rule is applied.
func (v *JournalEntryValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var entry models.JournalEntry
	switch typed := value.(type) {
	case models.JournalEntry:
		entry = typed
	case *models.JournalEntry:
		if typed == nil {
			return ErrUnsupportedType
		}
		entry = *typed
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDate}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if entry.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDate:
			// an absent date is fine, the backend fills in today
			if entry.Date != "" && entry.EntryTime().IsZero() {
				return ErrInvalidDate
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
