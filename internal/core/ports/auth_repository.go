package ports

import (
	"context"

	"github.com/kiosk123/user-api/internal/core/domain"
)

// AuthRepository defines persistence operations for accounts.
type AuthRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
}
