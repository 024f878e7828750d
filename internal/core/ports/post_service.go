package ports

import (
	"context"

	"github.com/kiosk123/user-api/internal/core/domain"
)

// PostService defines the post use-cases. Every operation verifies the
// owning user first, so a missing user surfaces as UserNotFoundError even
// when the post id is also unknown.
type PostService interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	Create(ctx context.Context, userID int64, description string) (int64, error)
	Update(ctx context.Context, userID, postID int64, description string) (*domain.Post, error)
	Delete(ctx context.Context, userID, postID int64) error
}
