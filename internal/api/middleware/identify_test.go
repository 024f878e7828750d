package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": "admin1",
		"role":     role,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runIdentify(t *testing.T, authorization string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Identify(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return c, err
}

func TestIdentify_NoHeaderPassesThrough(t *testing.T) {
	c, err := runIdentify(t, "")
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if c.Get("role") != nil {
		t.Fatalf("no role expected, got %v", c.Get("role"))
	}
}

func TestIdentify_ValidToken(t *testing.T) {
	c, err := runIdentify(t, "Bearer "+signedToken(t, testSecret, "admin", time.Hour))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if role, _ := c.Get("role").(string); role != "admin" {
		t.Fatalf("expected admin role in context, got %v", c.Get("role"))
	}
	if username, _ := c.Get("username").(string); username != "admin1" {
		t.Fatalf("expected username in context, got %v", c.Get("username"))
	}
}

func TestIdentify_WrongSecret(t *testing.T) {
	_, err := runIdentify(t, "Bearer "+signedToken(t, "other-secret", "admin", time.Hour))

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestIdentify_ExpiredToken(t *testing.T) {
	_, err := runIdentify(t, "Bearer "+signedToken(t, testSecret, "admin", -time.Hour))

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestIdentify_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Basic abc", "Bearer"} {
		_, err := runIdentify(t, header)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}
