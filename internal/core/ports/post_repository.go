package ports

import (
	"context"

	"github.com/kiosk123/user-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts, always scoped to
// the owning user.
type PostRepository interface {
	// Save assigns the id and both timestamps and persists the post.
	Save(ctx context.Context, p *domain.Post) (int64, error)
	FindByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	FindByUserAndID(ctx context.Context, userID, postID int64) (*domain.Post, error)
	// Update rewrites the description and advances the update date in a
	// single store operation.
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, p *domain.Post) error
}
