package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kiosk123/user-api/internal/core/domain"
	"github.com/kiosk123/user-api/internal/core/ports"
)

// UserService implements the user use-cases on top of the repository port.
// It holds no mutable state; atomicity of each mutation is the store's
// responsibility.
type UserService struct {
	repo   ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

// Create persists a new user. The password is stored as a bcrypt hash; the
// store assigns the id and join date.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Name:     input.Name,
		Password: string(hash),
		SSN:      input.SSN,
	}
	id, err := s.repo.Save(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create user")
		return 0, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user created")
	s.audit.Record(ports.AuditEvent{Action: "user.created", UserID: id, Occurred: time.Now().UTC()})
	return id, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update rewrites the user's mutable fields. The join date is immutable and
// the id never changes; a missing user surfaces as UserNotFoundError.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Name = input.Name
	user.Password = string(hash)
	user.SSN = input.SSN

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to update user")
		return nil, err
	}

	s.audit.Record(ports.AuditEvent{Action: "user.updated", UserID: id, Occurred: time.Now().UTC()})
	return user, nil
}

// Delete removes the user and, through the store's cascade, every post the
// user owns.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted with posts")
	s.audit.Record(ports.AuditEvent{Action: "user.deleted", UserID: id, Occurred: time.Now().UTC()})
	return nil
}
