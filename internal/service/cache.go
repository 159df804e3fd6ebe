// Package service contains the business logic of the ratio service: the
// ratio store, resolver, allocation-backed editor, and edit auditing.
package service

import (
	"strings"
	"sync"

	"github.com/threadline/ratio-service/internal/domain/model"
	"github.com/threadline/ratio-service/internal/metrics"
)

// scopeEntry is one cached scope: the rule list plus a case-normalized
// name index built once per load.
type scopeEntry struct {
	ratios []model.GarmentRatio
	byName map[string]*model.GarmentRatio
}

func newScopeEntry(ratios []model.GarmentRatio) *scopeEntry {
	e := &scopeEntry{
		ratios: ratios,
		byName: make(map[string]*model.GarmentRatio, len(ratios)),
	}
	for i := range ratios {
		e.byName[strings.ToLower(ratios[i].Name)] = &ratios[i]
	}
	return e
}

// find returns the cached rule for name, compared case-insensitively.
func (e *scopeEntry) find(name string) *model.GarmentRatio {
	return e.byName[strings.ToLower(name)]
}

// ScopeCache caches loaded scopes for the lifetime of the process. It is
// populated lazily on first load per scope and cleared only by explicit
// invalidation; there is no TTL and no size bound beyond the number of
// distinct scopes touched.
type ScopeCache struct {
	mu      sync.RWMutex
	entries map[string]*scopeEntry
}

// NewScopeCache creates an empty scope cache. One instance is constructed
// at application start and injected into the ratio store.
func NewScopeCache() *ScopeCache {
	return &ScopeCache{entries: make(map[string]*scopeEntry)}
}

func (c *ScopeCache) get(scope string) (*scopeEntry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[scope]
	c.mu.RUnlock()
	if ok {
		metrics.RecordCacheOperation("get", "hit")
	} else {
		metrics.RecordCacheOperation("get", "miss")
	}
	return entry, ok
}

func (c *ScopeCache) put(scope string, ratios []model.GarmentRatio) *scopeEntry {
	entry := newScopeEntry(ratios)
	c.mu.Lock()
	c.entries[scope] = entry
	c.mu.Unlock()
	metrics.RecordCacheOperation("set", "success")
	return entry
}

// invalidate clears the given scopes, or everything when none are given.
func (c *ScopeCache) invalidate(scopes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(scopes) == 0 {
		c.entries = make(map[string]*scopeEntry)
		metrics.RecordCacheOperation("invalidate", "all")
		return
	}
	for _, scope := range scopes {
		delete(c.entries, scope)
	}
	metrics.RecordCacheOperation("invalidate", "scope")
}

// Len reports how many scopes are currently cached.
func (c *ScopeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
