package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const auditCollection = "audit_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// EnsureAuditIndexes expires audit events after retention. A zero retention
// keeps them forever.
func EnsureAuditIndexes(ctx context.Context, db *mongo.Database, retention time.Duration) error {
	if retention <= 0 {
		return nil
	}
	_, err := db.Collection(auditCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().
			SetName("ttl_timestamp").
			SetExpireAfterSeconds(int32(retention.Seconds())),
	})
	if err != nil {
		return fmt.Errorf("create audit index: %w", err)
	}
	return nil
}

// Insert persists an audit event to the audit_events collection.
func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := bson.M{
		"action":     string(event.Action),
		"account_id": event.AccountID,
		"email":      event.Email,
		"timestamp":  event.Timestamp.UTC(),
		"stored_at":  time.Now().UTC(),
	}
	if event.ActorID != "" {
		doc["actor_id"] = event.ActorID
	}
	if event.Details != "" {
		doc["details"] = event.Details
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
