package models

// AuthResponse is the body returned by the login and register endpoints.
type AuthResponse struct {
	Token string `json:"token"`
}

// CountResponse is the body of the pending-request and friend count
// endpoints.
type CountResponse struct {
	Count int `json:"count"`
}

// RelationshipStatusResponse is the body of the per-user relationship
// status check.
type RelationshipStatusResponse struct {
	Status RelationshipStatus `json:"status"`
}
