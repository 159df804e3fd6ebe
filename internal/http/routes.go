package http

import (
	"github.com/gin-gonic/gin"

	"github.com/threadline/ratio-service/internal/service"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// RatioRoutes handles ratio-related route registration.
type RatioRoutes struct {
	handler *RatioHandler
}

// NewRatioRoutes creates a new RatioRoutes instance.
func NewRatioRoutes(store *service.RatioStore, resolver *service.Resolver, audit service.EditLogService) *RatioRoutes {
	return &RatioRoutes{handler: NewRatioHandler(store, resolver, audit)}
}

// RegisterRoutes registers resolution and scope administration routes.
func (r *RatioRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ratios/resolve", r.handler.Resolve)
	rg.GET("/ratios/:scope", r.handler.GetScope)
	rg.PUT("/ratios/:scope/:name", r.handler.UpdateRatio)
	rg.DELETE("/ratios/:scope/:name", r.handler.DeleteRatio)
}

// GetHandler returns the underlying ratio handler.
func (r *RatioRoutes) GetHandler() *RatioHandler {
	return r.handler
}

// AllocationRoutes handles allocation route registration.
type AllocationRoutes struct {
	handler *AllocationHandler
}

// NewAllocationRoutes creates a new AllocationRoutes instance.
func NewAllocationRoutes() *AllocationRoutes {
	return &AllocationRoutes{handler: NewAllocationHandler()}
}

// RegisterRoutes registers the allocation helper routes.
func (r *AllocationRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/allocation/validity", r.handler.PackValidity)
	rg.POST("/allocation/split", r.handler.EvenSplit)
}
