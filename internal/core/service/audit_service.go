package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kiosk123/user-api/internal/core/ports"
)

// auditService persists audit events delivered by the queue dispatcher.
type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService writing to the given repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event ports.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	s.log.Debug().
		Str("action", event.Action).
		Int64("user_id", event.UserID).
		Msg("audit event recorded")
	return nil
}

// NopAuditRecorder discards events. Used in tests and as a fallback when the
// dispatcher is not wired.
type NopAuditRecorder struct{}

func (NopAuditRecorder) Record(ports.AuditEvent) {}
