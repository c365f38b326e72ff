// Package users provides read access to user profiles. Users are created by
// sign-up and never mutated through this API, so the package exposes only the
// public-profile lookup for the authenticated principal.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/articlehub-go/apperror"
	"github.com/user/articlehub-go/auth"
)

// UserService looks up user profiles.
type UserService struct {
	db *pgxpool.Pool
}

// NewUserService creates a UserService.
func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// FindByID returns the public profile of the user with the given id. The
// password digest is never selected.
func (s *UserService) FindByID(ctx context.Context, userID int) (*auth.UserResponse, error) {
	var profile auth.UserResponse
	query := `SELECT id, first_name, last_name, email FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", userID), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user profile", err)
	}
	return &profile, nil
}
