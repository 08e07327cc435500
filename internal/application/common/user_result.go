package common

import "time"

// UserResult is the outward-facing shape of a user. It never carries the
// password hash or the verification token.
type UserResult struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
