package tui

import (
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/models"
)

type authDoneMsg struct {
	user models.User
	err  error
}

type entriesLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type entrySavedMsg struct {
	entry models.JournalEntry
	err   error
}

type entryDeletedMsg struct {
	id  int64
	err error
}

type publishToggledMsg struct {
	id        int64
	published bool
	err       error
}

// entryPatchedMsg carries the re-fetched entry after an attachment change.
// The updated record is patched into whatever list currently holds it
// instead of reloading everything.
type entryPatchedMsg struct {
	entry     models.JournalEntry
	oversized []string
	err       error
}

type publishedLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type friendsLoadedMsg struct {
	overview service.FriendOverview
	err      error
}

type friendActionDoneMsg struct {
	err error
}

type friendListLoadedMsg struct {
	friends []models.User
	err     error
}

type friendRemovedMsg struct {
	err error
}

type requestSentMsg struct {
	userID int64
	err    error
}

type usersFoundMsg struct {
	users []models.User
	err   error
}

type relationLoadedMsg struct {
	userID int64
	status models.RelationshipStatus
	err    error
}

type userJournalsLoadedMsg struct {
	owner   models.User
	entries []models.JournalEntry
	err     error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type adminUsersLoadedMsg struct {
	users []models.User
	err   error
}

type adminJournalsLoadedMsg struct {
	published bool
	entries   []models.JournalEntry
	err       error
}

type adminActionDoneMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
