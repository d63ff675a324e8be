package models

import (
	"strings"
	"time"
)

// Role is a single authority tag attached to a user account.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User represents an account entity returned by the backend.
//
// Authorization is enforced server-side; the role set carried here is only
// mirrored locally to decide which pages to show.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Roles is the set of authority tags granted to the account.
	Roles []Role `json:"roles"`

	// Enabled is false for accounts blocked by an administrator.
	Enabled bool `json:"enabled"`

	// ProfilePicture is an attachment reference resolved through the
	// media URL resolver before display.
	ProfilePicture string `json:"profilePicture"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether any role name carries the admin tag. The match is
// by substring because the backend has returned both "ADMIN" and
// "ROLE_ADMIN" over time.
func (u User) IsAdmin() bool {
	for _, role := range u.Roles {
		if strings.Contains(strings.ToUpper(role.Name), "ADMIN") {
			return true
		}
	}
	return false
}
