// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package validators

import (
	"context"
	"testing"

	"github.com/kolpakovda/go-journal-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalEntryValidator_Validate(t *testing.T) {
	ctx := context.Background()
	v := NewJournalEntryValidator()

	tests := []struct {
		name    string
		entry   models.JournalEntry
		fields  []string
		wantErr error
	}{
		{name: "valid entry", entry: models.JournalEntry{Title: "A day", Date: "2026-08-01"}},
		{name: "date may be empty", entry: models.JournalEntry{Title: "A day"}},
		{name: "empty title", entry: models.JournalEntry{Date: "2026-08-01"}, wantErr: ErrEmptyTitle},
		{name: "garbage date", entry: models.JournalEntry{Title: "A day", Date: "yesterday"}, wantErr: ErrInvalidDate},
		{name: "scoped to date skips title", entry: models.JournalEntry{Date: "2026-08-01"}, fields: []string{FieldDate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.entry, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestJournalEntryValidator_RejectsOtherTypes(t *testing.T) {
	v := NewJournalEntryValidator()

	err := v.Validate(context.Background(), "not an entry")
	require.ErrorIs(t, err, ErrUnsupportedType)

	err = v.Validate(context.Background(), models.JournalEntry{Title: "x"}, "mystery")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestCredentialsValidator_RegistrationRules(t *testing.T) {
	ctx := context.Background()
	v := NewCredentialsValidator()

	require.NoError(t, v.Validate(ctx, Credentials{Name: "Alice", Email: "alice@example.com", Password: "secret"}))

	assert.ErrorIs(t, v.Validate(ctx, Credentials{Email: "alice@example.com", Password: "secret"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, Credentials{Name: "Alice", Email: "alice", Password: "secret"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, Credentials{Name: "Alice", Email: "alice@example.com", Password: "pin"}), ErrShortPassword)
	assert.ErrorIs(t, v.Validate(ctx, Credentials{Name: "Alice", Email: "alice@example.com"}), ErrEmptyPassword)
}

func TestCredentialsValidator_SignInDoesNotEnforceStrength(t *testing.T) {
	ctx := context.Background()
	v := NewCredentialsValidator()

	// an old short password must still be able to sign in
	err := v.Validate(ctx, Credentials{Email: "alice@example.com", Password: "pin"}, FieldEmail, FieldPassword)
	require.NoError(t, err)

	err = v.Validate(ctx, Credentials{Email: "nope", Password: "pin"}, FieldEmail, FieldPassword)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, looksLikeEmail("a@b.co"))
	assert.False(t, looksLikeEmail("@b.co"))
	assert.False(t, looksLikeEmail("a@b"))
	assert.False(t, looksLikeEmail("a@@b.co"))
	assert.False(t, looksLikeEmail("a b@c.de"))
}
