package ports

import (
	"context"

	"github.com/kiosk123/user-api/internal/core/domain"
)

// CreateUserInput carries the fields a client may set on a new user. The id
// and join date are assigned by the store.
type CreateUserInput struct {
	Name     string
	Password string
	SSN      string
}

// UpdateUserInput carries the mutable fields of an existing user.
type UpdateUserInput struct {
	Name     string
	Password string
	SSN      string
}

// UserService defines the user use-cases.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (int64, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
