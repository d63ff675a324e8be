package models

import "time"

// FriendRequest is a pending or sent friendship request. Whether it is
// incoming or outgoing is inferred from which list it was fetched from;
// the backend does not return a status field on the request itself.
type FriendRequest struct {
	ID        int64     `json:"id"`
	Sender    User      `json:"sender"`
	Receiver  User      `json:"receiver"`
	CreatedAt time.Time `json:"createdAt"`
}

// RelationshipStatus is the per-user relationship state returned by the
// status-check endpoint.
type RelationshipStatus string

const (
	RelationFriends         RelationshipStatus = "FRIENDS"
	RelationRequestSent     RelationshipStatus = "REQUEST_SENT"
	RelationRequestReceived RelationshipStatus = "REQUEST_RECEIVED"
	RelationRejected        RelationshipStatus = "REJECTED"
	RelationNone            RelationshipStatus = "NONE"
)
