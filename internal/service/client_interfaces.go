package service

import (
	"context"

	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientAuthService manages the login session: authentication against the
// server, persistence of the session between launches and the cached profile
// of the signed-in user.
type ClientAuthService interface {
	// Login authenticates with email and password, persists the session
	// locally and returns the signed-in user's profile.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Register creates a new account, persists the returned session and
	// returns the fresh profile.
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// RestoreSession loads the previously persisted session, installs its
	// token on the adapter and validates it by fetching the profile. On a
	// rejected token the stale session is removed and the error returned.
	RestoreSession(ctx context.Context) (models.User, error)

	// RefreshUser re-fetches the signed-in user's profile and updates the
	// cached copy.
	RefreshUser(ctx context.Context) (models.User, error)

	// Logout clears the persisted session and the adapter token.
	Logout(ctx context.Context) error

	// User returns the cached profile of the signed-in user.
	User() models.User
}

// ClientJournalService covers the journal entry lifecycle: list loading with
// the own-versus-public visibility policy, CRUD, the publish workflow and
// media attachment management.
type ClientJournalService interface {
	// Load fetches the entry list of ownerID. When the viewer is the owner
	// all entries are returned; otherwise only the public ones.
	Load(ctx context.Context, viewerID, ownerID int64) ([]models.JournalEntry, error)

	// Entry fetches a single entry by id.
	Entry(ctx context.Context, journalID int64) (models.JournalEntry, error)

	Create(ctx context.Context, userID int64, entry models.JournalEntry) (models.JournalEntry, error)
	Update(ctx context.Context, journalID int64, entry models.JournalEntry) (models.JournalEntry, error)
	Delete(ctx context.Context, journalID int64) error

	Publish(ctx context.Context, journalID int64) error
	Unpublish(ctx context.Context, journalID int64) error

	// AddFiles uploads the files in one multipart request and returns the
	// re-fetched entry so the caller can patch it into its list.
	AddFiles(ctx context.Context, journalID int64, files []adapter.FileUpload) (models.JournalEntry, error)

	// DeleteFile removes one attachment. ref may be a resolved URL or a bare
	// filename; the stored filename is derived from its last path segment.
	// Returns the re-fetched entry.
	DeleteFile(ctx context.Context, journalID int64, ref string) (models.JournalEntry, error)

	// Published returns the shared feed of published entries, optionally
	// narrowed by a server-side search query.
	Published(ctx context.Context, query string) ([]models.JournalEntry, error)
}

// FriendOverview bundles the two independently fetched request lists shown
// on the friends page.
type FriendOverview struct {
	Pending []models.FriendRequest
	Sent    []models.FriendRequest
}

// ClientFriendService covers friend requests, relationship status lookups
// and the pending-request badge counter.
type ClientFriendService interface {
	// Overview fetches the pending and sent request lists concurrently.
	Overview(ctx context.Context) (FriendOverview, error)

	Send(ctx context.Context, receiverID int64) error
	Accept(ctx context.Context, requestID int64) error
	Reject(ctx context.Context, requestID int64) error
	Remove(ctx context.Context, friendID int64) error

	Status(ctx context.Context, userID int64) (models.RelationshipStatus, error)
	PendingCount(ctx context.Context) (int, error)
	FriendsOf(ctx context.Context, userID int64) ([]models.User, error)
}

// ClientUserService covers the signed-in user's profile and user discovery.
type ClientUserService interface {
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	UploadPhoto(ctx context.Context, file adapter.FileUpload) (models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
}

// ClientAdminService covers the moderation surface. Every call is rejected
// server-side unless the session belongs to an administrator; the client
// role check is advisory only.
type ClientAdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	Promote(ctx context.Context, userID int64) error
	ToggleStatus(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error

	Journals(ctx context.Context) ([]models.JournalEntry, error)
	DeleteJournal(ctx context.Context, journalID int64) error
	PublishedJournals(ctx context.Context) ([]models.JournalEntry, error)
	Hide(ctx context.Context, journalID int64) error
	Restore(ctx context.Context, journalID int64) error
}

// AppInfoService exposes build metadata to the UI.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
