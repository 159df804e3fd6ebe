package service

import (
	"context"

	"github.com/threadline/ratio-service/internal/domain/model"
	"github.com/threadline/ratio-service/internal/garment"
	"github.com/threadline/ratio-service/internal/metrics"
)

// Resolver maps catalog items to packing rules through the two-tier scope
// hierarchy: organization override first, then the default scope.
type Resolver struct {
	store *RatioStore
}

// NewResolver creates a resolver over the given store.
func NewResolver(store *RatioStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the packing rule for a catalog item, or nil when the
// item carries none. Nil is a normal terminal state for accessories and
// unmapped categories, never an error.
func (r *Resolver) Resolve(ctx context.Context, categoryPath, style, organizationKey string) *model.GarmentRatio {
	name, ok := garment.Identify(categoryPath, style)
	if !ok {
		metrics.RecordResolution("none")
		return nil
	}

	if organizationKey != "" && organizationKey != model.DefaultScope {
		if ratio := r.store.Find(ctx, organizationKey, name); ratio != nil {
			metrics.RecordResolution("override")
			return ratio
		}
	}

	ratio := r.store.Find(ctx, model.DefaultScope, name)
	if ratio == nil {
		metrics.RecordResolution("none")
		return nil
	}
	metrics.RecordResolution("default")
	return ratio
}
