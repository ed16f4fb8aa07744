package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

const minPasswordLength = 6

// SessionCookieName is the HttpOnly cookie holding the session token.
const SessionCookieName = "clinic_session"

// SessionClaims is the payload of the session cookie token.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   int         `json:"uid"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// AuthService implements login, session identity, password change and logout.
type AuthService struct {
	users     ports.UserRepository
	revoker   ports.TokenRevoker
	jwtSecret string
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, revoker ports.TokenRevoker, jwtSecret string, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, revoker: revoker, jwtSecret: jwtSecret, logger: logger}
}

// Login verifies the credentials and mints a session token whose lifetime is
// the user's configured session duration. A bad username and a bad password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := time.Now().UTC().Add(user.SessionTTL())
	token, err := s.mintToken(user, expiresAt)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user logged in")

	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Me re-derives the session user from the repository so role or first-login
// changes made after token issuance are reflected immediately.
func (s *AuthService) Me(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}

// ChangePassword re-hashes the password and clears the first-login flag.
func (s *AuthService) ChangePassword(ctx context.Context, userID int, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.SetPassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", userID).Msg("password changed")
	return nil
}

// Logout denylists the token until its natural expiry. The transport layer
// clears the cookie regardless of the outcome here.
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if err := s.revoker.Revoke(ctx, jti, expiresAt); err != nil {
		s.logger.Warn().Err(err).Str("jti", jti).Msg("session revocation failed")
		return err
	}
	return nil
}

func (s *AuthService) mintToken(user *domain.User, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// ParseSessionToken validates a session token string and returns its claims.
// Shared by the API middleware and the web shell.
func ParseSessionToken(jwtSecret, token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrNotAuthenticated
	}
	return claims, nil
}
