package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kiosk123/user-api/internal/core/ports"
)

const collectionAudit = "audit_events"

// AuditRepository appends mutation records to the audit trail.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(collectionAudit)}
}

type auditDoc struct {
	Action   string `bson:"action"`
	UserID   int64  `bson:"user_id"`
	PostID   int64  `bson:"post_id,omitempty"`
	Occurred int64  `bson:"occurred"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *ports.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, auditDoc{
		Action:   event.Action,
		UserID:   event.UserID,
		PostID:   event.PostID,
		Occurred: event.Occurred.Unix(),
	})
	return err
}
