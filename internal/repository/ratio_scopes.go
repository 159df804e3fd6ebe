package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/threadline/ratio-service/internal/domain/model"
)

// RatioScopesRepository stores per-scope packing rule documents, keyed by
// the scope itself ("default" or an organization key).
type RatioScopesRepository struct {
	collection *mongo.Collection
}

// NewRatioScopesRepository creates a new scope repository.
func NewRatioScopesRepository(db *MongoDB) *RatioScopesRepository {
	return &RatioScopesRepository{collection: db.RatioScopes}
}

// Get returns the scope document for key, or (nil, nil) when absent.
func (r *RatioScopesRepository) Get(ctx context.Context, key string) (*model.RatioScope, error) {
	var scope model.RatioScope
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&scope)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &scope, nil
}

// Put upserts the full scope document under its key.
func (r *RatioScopesRepository) Put(ctx context.Context, scope *model.RatioScope) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": scope.Key},
		scope,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes the scope document entirely.
func (r *RatioScopesRepository) Delete(ctx context.Context, key string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
