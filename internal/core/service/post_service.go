package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kiosk123/user-api/internal/core/domain"
	"github.com/kiosk123/user-api/internal/core/ports"
)

// PostService implements the post use-cases. Every operation resolves the
// owning user first: a missing user always wins over a missing post.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, audit: audit, logger: logger}
}

func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.posts.FindByUser(ctx, userID)
}

func (s *PostService) Create(ctx context.Context, userID int64, description string) (int64, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return 0, err
	}

	post := &domain.Post{UserID: userID, Description: description}
	id, err := s.posts.Save(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create post")
		return 0, err
	}

	s.logger.Info().Int64("user_id", userID).Int64("post_id", id).Msg("post created")
	s.audit.Record(ports.AuditEvent{Action: "post.created", UserID: userID, PostID: id, Occurred: time.Now().UTC()})
	return id, nil
}

// Update changes the description and advances the update date. The change
// either fully applies or fails with no partial effect (single-document
// store write).
func (s *PostService) Update(ctx context.Context, userID, postID int64, description string) (*domain.Post, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	post, err := s.posts.FindByUserAndID(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Description = description
	post.UpdateDate = time.Now().UTC()
	if err := s.posts.Update(ctx, post); err != nil {
		s.logger.Error().Err(err).Int64("post_id", postID).Msg("failed to update post")
		return nil, err
	}

	s.audit.Record(ports.AuditEvent{Action: "post.updated", UserID: userID, PostID: postID, Occurred: time.Now().UTC()})
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	post, err := s.posts.FindByUserAndID(ctx, userID, postID)
	if err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, post); err != nil {
		s.logger.Error().Err(err).Int64("post_id", postID).Msg("failed to delete post")
		return err
	}

	s.audit.Record(ports.AuditEvent{Action: "post.deleted", UserID: userID, PostID: postID, Occurred: time.Now().UTC()})
	return nil
}
