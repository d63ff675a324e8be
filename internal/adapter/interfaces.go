package adapter

import (
	"context"
	"io"

	"github.com/kolpakovda/go-journal-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FileUpload is a single file scheduled for a multipart upload request.
type FileUpload struct {
	// Filename is the name reported to the server in the multipart form.
	Filename string
	// Content is the file body. The adapter reads it exactly once.
	Content io.Reader
	// Size is the content length in bytes, used only for the client-side
	// soft size warning; the server remains the source of truth.
	Size int64
}

// ServerAdapter is the transport boundary to the remote journal backend.
// All business logic lives server-side; every method is one HTTP round trip
// plus JSON decoding and error mapping.
type ServerAdapter interface {
	// SetToken installs the bearer token attached to subsequent requests.
	// An empty token clears it.
	SetToken(token string)
	// Token returns the currently installed bearer token.
	Token() string

	// Auth
	Login(ctx context.Context, email, password string) (models.Token, error)
	Register(ctx context.Context, name, email, password string) (models.Token, error)

	// Users
	CurrentUser(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	UploadProfilePhoto(ctx context.Context, filename string, content io.Reader) (models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)

	// Journals (owner)
	JournalsByUser(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	Journal(ctx context.Context, journalID int64) (models.JournalEntry, error)
	CreateJournal(ctx context.Context, userID int64, entry models.JournalEntry) (models.JournalEntry, error)
	UpdateJournal(ctx context.Context, journalID int64, entry models.JournalEntry) (models.JournalEntry, error)
	DeleteJournal(ctx context.Context, journalID int64) error
	UploadJournalFiles(ctx context.Context, journalID int64, files []FileUpload) error
	DeleteJournalFile(ctx context.Context, journalID int64, filename string) error
	PublishJournal(ctx context.Context, journalID int64) error
	UnpublishJournal(ctx context.Context, journalID int64) error

	// Journals (public / published)
	PublicJournalsByUser(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	PublishedJournals(ctx context.Context) ([]models.JournalEntry, error)
	SearchPublishedJournals(ctx context.Context, query string) ([]models.JournalEntry, error)

	// Admin
	PromoteUser(ctx context.Context, userID int64) error
	ToggleUserStatus(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
	AdminJournals(ctx context.Context) ([]models.JournalEntry, error)
	AdminDeleteJournal(ctx context.Context, journalID int64) error
	AdminPublishedJournals(ctx context.Context) ([]models.JournalEntry, error)
	HideJournal(ctx context.Context, journalID int64) error
	RestoreJournal(ctx context.Context, journalID int64) error

	// Friends
	SendFriendRequest(ctx context.Context, receiverID int64) error
	AcceptFriendRequest(ctx context.Context, requestID int64) error
	RejectFriendRequest(ctx context.Context, requestID int64) error
	PendingFriendRequests(ctx context.Context) ([]models.FriendRequest, error)
	SentFriendRequests(ctx context.Context) ([]models.FriendRequest, error)
	PendingRequestCount(ctx context.Context) (int, error)
	RelationshipStatus(ctx context.Context, userID int64) (models.RelationshipStatus, error)
	RemoveFriend(ctx context.Context, friendID int64) error
	FriendsOf(ctx context.Context, userID int64) ([]models.User, error)
}
