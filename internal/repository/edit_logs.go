package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/threadline/ratio-service/internal/domain/model"
)

// editLogDocument is the stored shape of one audit entry.
type editLogDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
	Action    string             `bson:"action"`
	Scope     string             `bson:"scope"`
	Garment   string             `bson:"garment"`
	Actor     string             `bson:"actor,omitempty"`
	RequestID string             `bson:"request_id,omitempty"`
	SetPack   int                `bson:"set_pack,omitempty"`
	SizeScale string             `bson:"size_scale,omitempty"`
}

// EditLogsRepository stores the packing-rule edit audit trail.
type EditLogsRepository struct {
	collection *mongo.Collection
}

// NewEditLogsRepository creates a new edit log repository.
func NewEditLogsRepository(db *MongoDB) *EditLogsRepository {
	return &EditLogsRepository{collection: db.EditLogs}
}

// Insert stores one audit entry.
func (r *EditLogsRepository) Insert(ctx context.Context, entry *model.EditLog) error {
	doc := editLogDocument{
		ID:        primitive.NewObjectID(),
		Timestamp: entry.Timestamp,
		Action:    entry.Action,
		Scope:     entry.Scope,
		Garment:   entry.Garment,
		Actor:     entry.Actor,
		RequestID: entry.RequestID,
		SetPack:   entry.SetPack,
		SizeScale: entry.SizeScale,
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// List returns the most recent audit entries, newest first. Scope and
// garment narrow the result when non-empty.
func (r *EditLogsRepository) List(ctx context.Context, scope, garment string, limit int64) ([]model.EditLog, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	filter := bson.M{}
	if scope != "" {
		filter["scope"] = scope
	}
	if garment != "" {
		filter["garment"] = garment
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []editLogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]model.EditLog, len(docs))
	for i, doc := range docs {
		entries[i] = model.EditLog{
			Timestamp: doc.Timestamp,
			Action:    doc.Action,
			Scope:     doc.Scope,
			Garment:   doc.Garment,
			Actor:     doc.Actor,
			RequestID: doc.RequestID,
			SetPack:   doc.SetPack,
			SizeScale: doc.SizeScale,
		}
	}
	return entries, nil
}
