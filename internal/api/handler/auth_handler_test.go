package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kiosk123/user-api/internal/api/handler"
	"github.com/kiosk123/user-api/internal/core/domain"
)

type stubAuthService struct {
	accounts map[string]string
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{accounts: make(map[string]string)}
}

func (s *stubAuthService) Register(_ context.Context, username, password, role string) (*domain.Account, error) {
	if _, ok := s.accounts[username]; ok {
		return nil, domain.ErrAccountExists
	}
	s.accounts[username] = password
	return &domain.Account{ID: "1", Username: username, Role: role}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, *domain.Account, error) {
	stored, ok := s.accounts[username]
	if !ok {
		return "", nil, domain.ErrAccountNotFound
	}
	if stored != password {
		return "", nil, domain.ErrInvalidCredentials
	}
	return "signed-token", &domain.Account{ID: "1", Username: username}, nil
}

func postJSON(e *echo.Echo, h echo.HandlerFunc, target, body string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h(c)
}

func TestAuthHandler_Register(t *testing.T) {
	e := newTestEcho(t)
	h := handler.NewAuthHandler(newStubAuthService())

	rec, err := postJSON(e, h.Register, "/auth/register", `{"username":"admin1","password":"pass1","role":"admin"}`)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body struct {
		Account *domain.Account `json:"account"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Account == nil || body.Account.Username != "admin1" {
		t.Fatalf("unexpected response %s", rec.Body.String())
	}
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	e := newTestEcho(t)
	svc := newStubAuthService()
	h := handler.NewAuthHandler(svc)

	if _, err := postJSON(e, h.Register, "/auth/register", `{"username":"u1","password":"p","role":"user"}`); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := postJSON(e, h.Register, "/auth/register", `{"username":"u1","password":"p","role":"user"}`)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
}

func TestAuthHandler_RegisterInvalidRole(t *testing.T) {
	e := newTestEcho(t)
	h := handler.NewAuthHandler(newStubAuthService())

	_, err := postJSON(e, h.Register, "/auth/register", `{"username":"u1","password":"p","role":"superuser"}`)

	var ve *handler.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	e := newTestEcho(t)
	svc := newStubAuthService()
	h := handler.NewAuthHandler(svc)

	if _, err := postJSON(e, h.Register, "/auth/register", `{"username":"u1","password":"p1","role":"user"}`); err != nil {
		t.Fatalf("register: %v", err)
	}

	rec, err := postJSON(e, h.Login, "/auth/login", `{"username":"u1","password":"p1"}`)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "signed-token") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	e := newTestEcho(t)
	svc := newStubAuthService()
	h := handler.NewAuthHandler(svc)

	if _, err := postJSON(e, h.Register, "/auth/register", `{"username":"u1","password":"p1","role":"user"}`); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := postJSON(e, h.Login, "/auth/login", `{"username":"u1","password":"nope"}`)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_LoginUnknownAccount(t *testing.T) {
	e := newTestEcho(t)
	h := handler.NewAuthHandler(newStubAuthService())

	_, err := postJSON(e, h.Login, "/auth/login", `{"username":"ghost","password":"p"}`)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
