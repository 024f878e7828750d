package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kiosk123/user-api/internal/core/domain"
)

type memAuthRepo struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newMemAuthRepo() *memAuthRepo {
	return &memAuthRepo{accounts: make(map[string]*domain.Account)}
}

func (r *memAuthRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, ok := r.accounts[account.Username]; ok {
		return nil, domain.ErrAccountExists
	}
	r.nextID++
	account.ID = strconv.Itoa(r.nextID)
	r.accounts[account.Username] = account
	return account, nil
}

func (r *memAuthRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	account, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMemAuthRepo(), "test-secret", time.Hour)

	account, err := svc.Register(context.Background(), "admin1", "pass1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.PasswordHash == "pass1" {
		t.Fatal("password stored in plain text")
	}

	token, logged, err := svc.Login(context.Background(), "admin1", "pass1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Username != "admin1" {
		t.Fatalf("unexpected account %+v", logged)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["username"] != "admin1" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newMemAuthRepo(), "test-secret", time.Hour)

	if _, err := svc.Register(context.Background(), "user1", "pass1", domain.RoleUser); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "user1", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginUnknownAccount(t *testing.T) {
	svc := NewAuthService(newMemAuthRepo(), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost", "pass1")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc := NewAuthService(newMemAuthRepo(), "test-secret", time.Hour)

	if _, err := svc.Register(context.Background(), "user1", "pass1", domain.RoleUser); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(context.Background(), "user1", "pass2", domain.RoleUser)
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	svc := NewAuthService(newMemAuthRepo(), "test-secret", time.Hour)

	_, err := svc.Register(context.Background(), "user1", "pass1", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
