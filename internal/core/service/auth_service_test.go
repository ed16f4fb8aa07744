package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Dr. " + username,
		Role:         role,
		IsFirstLogin: true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "amal", "s3cret1", domain.RoleDoctor)
	svc := NewAuthService(repo, newStubRevoker(), "secret", zerolog.Nop())

	result, err := svc.Login(context.Background(), "amal", "s3cret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a session token")
	}
	if result.User.ID != seeded.ID {
		t.Fatalf("unexpected user id: %d", result.User.ID)
	}

	claims, err := ParseSessionToken("secret", result.Token)
	if err != nil {
		t.Fatalf("minted token did not parse: %v", err)
	}
	if claims.UserID != seeded.ID || claims.Role != domain.RoleDoctor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected a token id for revocation")
	}
}

func TestAuthService_Login_SessionDuration(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "lina", "s3cret1", domain.RoleReceptionist)
	user.SessionDurationHours = 2
	repo.users[user.ID].SessionDurationHours = 2
	svc := NewAuthService(repo, newStubRevoker(), "secret", zerolog.Nop())

	result, err := svc.Login(context.Background(), "lina", "s3cret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	ttl := time.Until(result.ExpiresAt)
	if ttl < 115*time.Minute || ttl > 125*time.Minute {
		t.Fatalf("expected ~2h session, got %s", ttl)
	}
}

func TestAuthService_Login_BadPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "amal", "s3cret1", domain.RoleAdmin)
	svc := NewAuthService(repo, newStubRevoker(), "secret", zerolog.Nop())

	if _, err := svc.Login(context.Background(), "amal", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", zerolog.Nop())

	// Unknown usernames and wrong passwords must be indistinguishable.
	if _, err := svc.Login(context.Background(), "ghost", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ChangePassword_ClearsFirstLogin(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "amal", "s3cret1", domain.RoleAdmin)
	svc := NewAuthService(repo, newStubRevoker(), "secret", zerolog.Nop())

	if err := svc.ChangePassword(context.Background(), user.ID, "n3wpass"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.IsFirstLogin {
		t.Fatalf("expected first-login flag cleared")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("n3wpass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}

	if _, err := svc.Login(context.Background(), "amal", "s3cret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password should no longer work, got %v", err)
	}
}

func TestAuthService_ChangePassword_Weak(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "amal", "s3cret1", domain.RoleAdmin)
	svc := NewAuthService(repo, newStubRevoker(), "secret", zerolog.Nop())

	if err := svc.ChangePassword(context.Background(), user.ID, "short"); err != domain.ErrWeakPassword {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_Logout_Revokes(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubUserRepo(), revoker, "secret", zerolog.Nop())

	expiry := time.Now().Add(time.Hour)
	if err := svc.Logout(context.Background(), "jti-1", expiry); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	revoked, _ := revoker.IsRevoked(context.Background(), "jti-1")
	if !revoked {
		t.Fatalf("expected token id to be revoked")
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "amal", "s3cret1", domain.RoleAdmin)
	svc := NewAuthService(repo, newStubRevoker(), "secret", zerolog.Nop())

	result, err := svc.Login(context.Background(), "amal", "s3cret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if _, err := ParseSessionToken("other-secret", result.Token); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
