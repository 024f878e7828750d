package ports

import (
	"context"

	"github.com/kiosk123/user-api/internal/core/domain"
)

// AuthService implements account registration and login. Login returns a
// signed token carrying the role the version layer treats as the resolved
// audience.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
}
