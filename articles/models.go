// Package articles implements the article resource: create, list with
// date-range and pagination filtering, fetch, and owner-checked update and
// delete. The persistence contract lives behind the Repository interface;
// the business rules live in Service.
package articles

import (
	"time"

	"github.com/user/articlehub-go/auth"
)

// Article represents an article row. Owner carries the owning user's public
// profile when the row was loaded with its user relation joined in.
type Article struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	UserID      int                `json:"user_id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Owner       *auth.UserResponse `json:"user,omitempty"`
}
