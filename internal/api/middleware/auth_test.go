package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/service"
)

const testSecret = "test-secret"

type stubRevoker struct {
	revoked map[string]bool
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, _ time.Time) error {
	if s.revoked == nil {
		s.revoked = map[string]bool{}
	}
	s.revoked[jti] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}

func mintToken(t *testing.T, secret, jti string, userID int, role domain.Role, expiresAt time.Time) string {
	t.Helper()
	claims := service.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   userID,
		Username: "amal",
		Role:     role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func sessionContext(t *testing.T, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession_ValidToken(t *testing.T) {
	token := mintToken(t, testSecret, "jti-1", 5, domain.RoleDoctor, time.Now().Add(time.Hour))
	c, _ := sessionContext(t, token)

	called := false
	handler := Session(testSecret, &stubRevoker{})(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID).(int) != 5 {
			t.Fatalf("user id not injected: %v", c.Get(CtxUserID))
		}
		if c.Get(CtxRole).(domain.Role) != domain.RoleDoctor {
			t.Fatalf("role not injected: %v", c.Get(CtxRole))
		}
		if c.Get(CtxTokenJTI).(string) != "jti-1" {
			t.Fatalf("jti not injected: %v", c.Get(CtxTokenJTI))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestSession_MissingCookie(t *testing.T) {
	c, _ := sessionContext(t, "")

	err := Session(testSecret, &stubRevoker{})(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_ExpiredToken(t *testing.T) {
	token := mintToken(t, testSecret, "jti-1", 5, domain.RoleAdmin, time.Now().Add(-time.Minute))
	c, _ := sessionContext(t, token)

	err := Session(testSecret, &stubRevoker{})(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_WrongSecret(t *testing.T) {
	token := mintToken(t, "other-secret", "jti-1", 5, domain.RoleAdmin, time.Now().Add(time.Hour))
	c, _ := sessionContext(t, token)

	err := Session(testSecret, &stubRevoker{})(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_RevokedToken(t *testing.T) {
	revoker := &stubRevoker{}
	_ = revoker.Revoke(context.Background(), "jti-1", time.Now().Add(time.Hour))

	token := mintToken(t, testSecret, "jti-1", 5, domain.RoleAdmin, time.Now().Add(time.Hour))
	c, _ := sessionContext(t, token)

	err := Session(testSecret, revoker)(func(c echo.Context) error {
		t.Fatalf("revoked token must not pass")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
