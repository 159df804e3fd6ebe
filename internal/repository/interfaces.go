package repository

import (
	"context"

	"github.com/threadline/ratio-service/internal/domain/model"
)

// RatioScopes is the contract the ratio store needs from scope-document
// storage: get, replace, and delete by scope key.
type RatioScopes interface {
	// Get returns the scope document, or (nil, nil) when it does not exist.
	Get(ctx context.Context, key string) (*model.RatioScope, error)
	// Put upserts the full scope document under its key.
	Put(ctx context.Context, scope *model.RatioScope) error
	// Delete removes the scope document. Deleting an absent document is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// EditLogs is the contract for the edit audit trail.
type EditLogs interface {
	Insert(ctx context.Context, entry *model.EditLog) error
	// List returns the most recent entries, newest first, filtered by
	// scope and garment when non-empty.
	List(ctx context.Context, scope, garment string, limit int64) ([]model.EditLog, error)
}
