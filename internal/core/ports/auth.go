package ports

import (
	"context"
	"time"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// LoginResult carries everything the transport layer needs to establish a
// session: the signed token for the cookie, its expiry, and the user to
// return in the response body.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService owns the session lifecycle: who is logged in, password
// changes, and revocation on logout.
type AuthService interface {
	// Login verifies credentials and mints a session token whose lifetime is
	// the user's configured session duration.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Me re-derives the session user from a validated token's subject.
	Me(ctx context.Context, userID int) (*domain.User, error)
	// ChangePassword re-hashes the password and clears the first-login flag.
	ChangePassword(ctx context.Context, userID int, newPassword string) error
	// Logout revokes the token until its natural expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

// TokenRevoker is the denylist consulted on every authenticated request.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
