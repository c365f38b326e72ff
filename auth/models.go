// Package auth handles user identity: sign-up, sign-in, password digests,
// token issuance and verification, and the request authentication middleware.
package auth

import "time"

// User represents a user row. HashedPassword is never serialized.
type User struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Public returns the user's public profile fields, the only user shape the
// API ever exposes.
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
