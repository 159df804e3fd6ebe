package repository

import (
	"context"

	"github.com/threadline/ratio-service/internal/circuitbreaker"
	"github.com/threadline/ratio-service/internal/domain/model"
)

// RatioScopesWithBreaker wraps a scope repository with circuit breaker
// protection. An open circuit surfaces as a read error, which the ratio
// store treats like any other storage failure and falls back.
type RatioScopesWithBreaker struct {
	repo    RatioScopes
	breaker *circuitbreaker.Breaker
}

// NewRatioScopesWithBreaker wraps repo with the given breaker.
func NewRatioScopesWithBreaker(repo RatioScopes, breaker *circuitbreaker.Breaker) *RatioScopesWithBreaker {
	return &RatioScopesWithBreaker{repo: repo, breaker: breaker}
}

// Get fetches a scope document under breaker protection.
func (r *RatioScopesWithBreaker) Get(ctx context.Context, key string) (*model.RatioScope, error) {
	var scope *model.RatioScope
	err := r.breaker.Do(ctx, func() error {
		var innerErr error
		scope, innerErr = r.repo.Get(ctx, key)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return scope, nil
}

// Put upserts a scope document under breaker protection.
func (r *RatioScopesWithBreaker) Put(ctx context.Context, scope *model.RatioScope) error {
	return r.breaker.Do(ctx, func() error {
		return r.repo.Put(ctx, scope)
	})
}

// Delete removes a scope document under breaker protection.
func (r *RatioScopesWithBreaker) Delete(ctx context.Context, key string) error {
	return r.breaker.Do(ctx, func() error {
		return r.repo.Delete(ctx, key)
	})
}

// Breaker exposes the underlying breaker for health monitoring.
func (r *RatioScopesWithBreaker) Breaker() *circuitbreaker.Breaker {
	return r.breaker
}

// EditLogsWithBreaker wraps the audit repository with circuit breaker
// protection. Audit writes are best effort; a rejected write is the
// caller's signal to drop the entry, not to fail the edit.
type EditLogsWithBreaker struct {
	repo    EditLogs
	breaker *circuitbreaker.Breaker
}

// NewEditLogsWithBreaker wraps repo with the given breaker.
func NewEditLogsWithBreaker(repo EditLogs, breaker *circuitbreaker.Breaker) *EditLogsWithBreaker {
	return &EditLogsWithBreaker{repo: repo, breaker: breaker}
}

// Insert stores an audit entry under breaker protection.
func (r *EditLogsWithBreaker) Insert(ctx context.Context, entry *model.EditLog) error {
	return r.breaker.Do(ctx, func() error {
		return r.repo.Insert(ctx, entry)
	})
}

// List fetches audit entries under breaker protection.
func (r *EditLogsWithBreaker) List(ctx context.Context, scope, garment string, limit int64) ([]model.EditLog, error) {
	var entries []model.EditLog
	err := r.breaker.Do(ctx, func() error {
		var innerErr error
		entries, innerErr = r.repo.List(ctx, scope, garment, limit)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Breaker exposes the underlying breaker for health monitoring.
func (r *EditLogsWithBreaker) Breaker() *circuitbreaker.Breaker {
	return r.breaker
}
