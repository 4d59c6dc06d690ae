package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

const auditCollection = "application_events"

// MongoAuditRepository stores the append-only application history trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	ApplicantID string `bson:"applicant_id"`
	Actor       string `bson:"actor"`
	Action      string `bson:"action"`
	Status      string `bson:"status"`
	Notes       string `bson:"notes,omitempty"`
	OccurredAt  int64  `bson:"occurred_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := mongoAuditEvent{
		ApplicantID: event.ApplicantID,
		Actor:       event.Actor,
		Action:      string(event.Action),
		Status:      string(event.Status),
		Notes:       event.Notes,
		OccurredAt:  event.OccurredAt.UnixNano(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) FindByApplicant(ctx context.Context, applicantID string) ([]domain.AuditEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"applicant_id": applicantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuditEvent
	for cur.Next(ctx) {
		var me mongoAuditEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, domain.AuditEvent{
			ApplicantID: me.ApplicantID,
			Actor:       me.Actor,
			Action:      domain.AuditAction(me.Action),
			Status:      domain.ApplicationStatus(me.Status),
			Notes:       me.Notes,
			OccurredAt:  time.Unix(0, me.OccurredAt).UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}

// EnsureIndexes creates the applicant_id index the history lookup depends on.
func (r *MongoAuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "applicant_id", Value: 1}, {Key: "occurred_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	return nil
}
