package ports

import (
	"context"

	"github.com/kiosk123/user-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Each call is
// atomic at the store's transaction boundary; the service layer adds no
// locking of its own.
type UserRepository interface {
	// Save assigns the id and join date and persists the user. The
	// assigned id is returned and also written back to u.
	Save(ctx context.Context, u *domain.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Update rewrites the mutable fields (name, password, ssn). The join
	// date is never touched after creation.
	Update(ctx context.Context, u *domain.User) error
	// Delete removes the user and cascades to all of its posts: no post
	// outlives its owner.
	Delete(ctx context.Context, id int64) error
}
