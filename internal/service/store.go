package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/threadline/ratio-service/internal/domain/model"
	"github.com/threadline/ratio-service/internal/repository"
)

// RatioStore loads, caches, and writes per-scope packing rules. Reads
// resolve through three tiers: the scope cache, the persistent scope
// document, and (for the default scope) the bundled fallback dataset. A
// storage failure on read is treated as "no data for this scope" and never
// surfaces to the caller; writes and deletes propagate their errors.
type RatioStore struct {
	repo     repository.RatioScopes
	cache    *ScopeCache
	fallback []model.GarmentRatio
}

// StoreOption configures a RatioStore.
type StoreOption func(*RatioStore)

// WithFallback replaces the bundled fallback dataset.
func WithFallback(ratios []model.GarmentRatio) StoreOption {
	return func(s *RatioStore) {
		s.fallback = ratios
	}
}

// NewRatioStore creates a store over the given scope repository and cache.
// The repository may be nil, in which case every scope reads as empty and
// the default scope serves the bundled dataset.
func NewRatioStore(repo repository.RatioScopes, cache *ScopeCache, opts ...StoreOption) *RatioStore {
	s := &RatioStore{
		repo:     repo,
		cache:    cache,
		fallback: DefaultRatios(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns every packing rule in a scope. The result is cached until
// the scope is invalidated. Load never fails: a storage error falls
// through to the fallback tier and is only logged.
func (s *RatioStore) Load(ctx context.Context, scope string) []model.GarmentRatio {
	entry := s.loadEntry(ctx, scope)
	return entry.ratios
}

// Find returns a copy of the named rule in a scope, or nil. Matching is
// case-insensitive.
func (s *RatioStore) Find(ctx context.Context, scope, name string) *model.GarmentRatio {
	return s.loadEntry(ctx, scope).find(name).Clone()
}

// loadEntry resolves a scope through cache, storage, and fallback.
func (s *RatioStore) loadEntry(ctx context.Context, scope string) *scopeEntry {
	if entry, ok := s.cache.get(scope); ok {
		return entry
	}

	doc, err := s.get(ctx, scope)
	if err != nil {
		// Reads never surface storage failures; serve the next tier but
		// leave the scope uncached so recovery is picked up.
		log.Warn().Err(err).Str("scope", scope).Msg("Scope load failed, serving fallback")
		return newScopeEntry(s.fallbackFor(scope))
	}

	if doc != nil && len(doc.Ratios) > 0 {
		return s.cache.put(scope, doc.Ratios)
	}
	return s.cache.put(scope, s.fallbackFor(scope))
}

func (s *RatioStore) fallbackFor(scope string) []model.GarmentRatio {
	if scope == model.DefaultScope {
		return s.fallback
	}
	return nil
}

func (s *RatioStore) get(ctx context.Context, scope string) (*model.RatioScope, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.Get(ctx, scope)
}

// Invalidate clears the cache for the given scopes, or for every scope
// when none are named. Writers call this after a successful write, before
// any subsequent read can be trusted.
func (s *RatioStore) Invalidate(scopes ...string) {
	s.cache.invalidate(scopes...)
}

// Write merges update into the named rule within a scope, creating the
// rule and the scope document as needed, and persists the full document.
// Cache invalidation is left to the caller so related writes can be
// batched before invalidating once.
func (s *RatioStore) Write(ctx context.Context, scope, name string, update model.GarmentRatio) error {
	if s.repo == nil {
		return ErrStorageNotConfigured
	}

	doc, err := s.repo.Get(ctx, scope)
	if err != nil {
		return err
	}

	now := time.Now()
	if doc == nil {
		doc = &model.RatioScope{Key: scope, CreatedAt: now}
		if scope != model.DefaultScope {
			doc.OrganizationKey = scope
		}
	}

	// An unseeded default document must start from the bundled dataset,
	// or the first write would shadow every other bundled rule.
	if scope == model.DefaultScope && len(doc.Ratios) == 0 {
		doc.Ratios = make([]model.GarmentRatio, 0, len(s.fallback))
		for _, ratio := range s.fallback {
			doc.Ratios = append(doc.Ratios, *ratio.Clone())
		}
	}

	existing := doc.FindRatio(name)
	if existing == nil {
		ratio := model.GarmentRatio{Name: name}
		ratio.Merge(update)
		doc.Ratios = append(doc.Ratios, ratio)
	} else {
		existing.Merge(update)
	}
	doc.UpdatedAt = now

	return s.repo.Put(ctx, doc)
}

// DeleteOverride removes the named rule from an organization scope. When
// that empties the scope's rule set, the scope document itself is deleted
// and the organization reverts fully to default behavior. Deleting from an
// absent scope or an absent rule is a no-op.
func (s *RatioStore) DeleteOverride(ctx context.Context, scope, name string) error {
	if s.repo == nil {
		return ErrStorageNotConfigured
	}

	doc, err := s.repo.Get(ctx, scope)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	kept := doc.Ratios[:0]
	for _, ratio := range doc.Ratios {
		if !strings.EqualFold(ratio.Name, name) {
			kept = append(kept, ratio)
		}
	}
	if len(kept) == len(doc.Ratios) {
		return nil
	}

	if len(kept) == 0 {
		return s.repo.Delete(ctx, scope)
	}

	doc.Ratios = kept
	doc.UpdatedAt = time.Now()
	return s.repo.Put(ctx, doc)
}
