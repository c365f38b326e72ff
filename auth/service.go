package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/articlehub-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// AuthService implements sign-up and sign-in. Its collaborators — the
// connection pool, the credential hasher, and the token issuer — are all
// injected at construction.
type AuthService struct {
	db     *pgxpool.Pool
	hasher *PasswordHasher
	issuer *TokenIssuer
}

// NewAuthService creates an AuthService.
func NewAuthService(db *pgxpool.Pool, hasher *PasswordHasher, issuer *TokenIssuer) *AuthService {
	return &AuthService{
		db:     db,
		hasher: hasher,
		issuer: issuer,
	}
}

// SignUp registers a new user. A user whose email is already registered is
// rejected with a conflict; otherwise the password is hashed, the user is
// persisted, and a token bound to the new user's id is issued.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	email := strings.ToLower(req.Email)

	var existingID int
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&existingID)
	if err == nil {
		return nil, apperror.NewConflictError("Email is already in use", nil)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewDatabaseError("failed to check existing user", err)
	}

	user := &User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          email,
		HashedPassword: s.hasher.Hash(req.Password),
	}

	query := `INSERT INTO users (first_name, last_name, email, password)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, role, created_at, updated_at`
	err = s.db.QueryRow(ctx, query, user.FirstName, user.LastName, user.Email, user.HashedPassword).
		Scan(&user.ID, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		// The existence check above races with concurrent sign-ups; the unique
		// constraint is the authority.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("Email is already in use", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	return s.respondWithToken(user)
}

// SignIn authenticates a user. The supplied password is hashed and matched
// together with the email in a single lookup, so a wrong password and an
// unknown email are deliberately indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*AuthResponse, error) {
	digest := s.hasher.Hash(req.Password)

	var user User
	query := `SELECT id, first_name, last_name, email, role, created_at, updated_at
	          FROM users WHERE email = $1 AND password = $2`
	err := s.db.QueryRow(ctx, query, strings.ToLower(req.Email), digest).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewBadRequestError("Invalid Email or Password", nil)
		}
		return nil, apperror.NewDatabaseError("failed to look up user", err)
	}

	return s.respondWithToken(&user)
}

func (s *AuthService) respondWithToken(user *User) (*AuthResponse, error) {
	token, err := s.issuer.Sign(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError(fmt.Sprintf("failed to issue token for user %d", user.ID), err)
	}
	return &AuthResponse{
		User:        user.Public(),
		AccessToken: token,
	}, nil
}
