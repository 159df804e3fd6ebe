// Package app provides service initialization.
package app

import (
	"github.com/threadline/ratio-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Cache    *service.ScopeCache
	Store    *service.RatioStore
	Resolver *service.Resolver
	Audit    service.EditLogService
}

// InitializeServices initializes business logic services over the
// database components, which may be nil.
func InitializeServices(dbComponents *DatabaseComponents) *ServiceComponents {
	cache := service.NewScopeCache()

	var store *service.RatioStore
	var audit service.EditLogService
	if dbComponents != nil {
		store = service.NewRatioStore(dbComponents.RatioScopes, cache)
		audit = service.NewEditLogService(dbComponents.EditLogs)
	} else {
		store = service.NewRatioStore(nil, cache)
	}

	return &ServiceComponents{
		Cache:    cache,
		Store:    store,
		Resolver: service.NewResolver(store),
		Audit:    audit,
	}
}
