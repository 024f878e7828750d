package ports

import (
	"context"
	"time"
)

// AuditEvent records one successful mutation of the resource graph.
type AuditEvent struct {
	Action   string // e.g. "user.created", "post.deleted"
	UserID   int64
	PostID   int64 // zero when the event is not post-scoped
	Occurred time.Time
}

// AuditRecorder accepts events for asynchronous recording. Enqueue must not
// block the request path beyond channel buffering.
type AuditRecorder interface {
	Record(event AuditEvent)
}

// AuditService persists a single audit event.
type AuditService interface {
	Process(ctx context.Context, event AuditEvent) error
}

// AuditRepository is the store behind the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *AuditEvent) error
}
