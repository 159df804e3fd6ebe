package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadline/ratio-service/internal/domain/dto"
	"github.com/threadline/ratio-service/internal/domain/model"
	"github.com/threadline/ratio-service/internal/i18n"
	"github.com/threadline/ratio-service/internal/metrics"
	"github.com/threadline/ratio-service/internal/middleware"
	"github.com/threadline/ratio-service/internal/service"
	"github.com/threadline/ratio-service/internal/sizescale"
)

// actorHeader identifies the editing user for the audit trail.
const actorHeader = "X-Actor"

// RatioHandler provides HTTP handlers for ratio resolution and scope
// administration.
type RatioHandler struct {
	store    *service.RatioStore
	resolver *service.Resolver
	audit    service.EditLogService
}

// NewRatioHandler creates a new RatioHandler instance. The audit service
// may be nil, in which case edits are not recorded.
func NewRatioHandler(store *service.RatioStore, resolver *service.Resolver, audit service.EditLogService) *RatioHandler {
	return &RatioHandler{
		store:    store,
		resolver: resolver,
		audit:    audit,
	}
}

// Resolve handles GET /api/ratios/resolve requests. It maps a catalog item
// to its packing rule through the organization and default scopes and
// returns the rule's projections. An item with no rule answers 200 with
// has_ratio false, not 404: missing rules are a normal catalog state.
func (h *RatioHandler) Resolve(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.ResolveQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	ratio := h.resolver.Resolve(c.Request.Context(), query.Category, query.Style, query.Organization)
	if ratio == nil {
		builder.SuccessOK(dto.ResolutionResponse{HasRatio: false})
		return
	}

	builder.SuccessOK(dto.ResolutionResponse{
		Garment:      ratio.Name,
		HasRatio:     true,
		SetPack:      ratio.PackSize(),
		SizeScale:    ratio.Scale(),
		Sizes:        sizescale.Expand(ratio.Scale()),
		Distribution: ratio.Distribution(),
	})
}

// GetScope handles GET /api/ratios/:scope requests, returning every
// packing rule in the scope. Organization scopes without overrides answer
// an empty list.
func (h *RatioHandler) GetScope(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scope := c.Param("scope")
	ratios := h.store.Load(c.Request.Context(), scope)

	builder.SuccessOK(gin.H{
		"scope":  scope,
		"ratios": ratios,
	})
}

// UpdateRatio handles PUT /api/ratios/:scope/:name requests. The body is a
// partial rule in wire shape; it is merged over the rule's current state
// in the scope, validated, persisted, and the scope cache invalidated.
func (h *RatioHandler) UpdateRatio(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scope := c.Param("scope")
	name := c.Param("name")

	var update model.GarmentRatio
	if err := c.ShouldBindJSON(&update); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	update.Name = name

	// Validate the rule as it would look after the merge.
	merged := h.store.Find(c.Request.Context(), scope, name)
	if merged == nil {
		merged = &model.GarmentRatio{Name: name}
	}
	merged.Merge(update)
	if !service.ValidateRatio(merged) {
		metrics.RecordEdit(model.EditActionSave, "invalid")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyPackSum, nil)
		return
	}

	if err := h.store.Write(c.Request.Context(), scope, name, update); err != nil {
		metrics.RecordEdit(model.EditActionSave, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	h.store.Invalidate(scope)
	metrics.RecordEdit(model.EditActionSave, "success")

	if h.audit != nil {
		h.audit.Record(c.Request.Context(), &model.EditLog{
			Action:    model.EditActionSave,
			Scope:     scope,
			Garment:   name,
			Actor:     c.GetHeader(actorHeader),
			RequestID: middleware.GetRequestID(c),
			SetPack:   merged.PackSize(),
			SizeScale: merged.Scale(),
		})
	}

	builder.SuccessOK(merged)
}

// DeleteRatio handles DELETE /api/ratios/:scope/:name requests, removing
// an organization's override so the garment reverts to the default rule.
// Deleting the last override removes the scope document entirely. The
// request must carry confirm=true.
func (h *RatioHandler) DeleteRatio(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scope := c.Param("scope")
	name := c.Param("name")

	if scope == model.DefaultScope {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyNotOverride, nil)
		return
	}
	if c.Query("confirm") != "true" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyRevertNotConfirmed, nil)
		return
	}

	if err := h.store.DeleteOverride(c.Request.Context(), scope, name); err != nil {
		metrics.RecordEdit(model.EditActionRevert, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	h.store.Invalidate(scope, model.DefaultScope)
	metrics.RecordEdit(model.EditActionRevert, "success")

	if h.audit != nil {
		h.audit.Record(c.Request.Context(), &model.EditLog{
			Action:    model.EditActionRevert,
			Scope:     scope,
			Garment:   name,
			Actor:     c.GetHeader(actorHeader),
			RequestID: middleware.GetRequestID(c),
		})
	}

	builder.SuccessOK(gin.H{
		"scope":   scope,
		"garment": name,
		// The caller now sees the default rule, if one exists.
		"ratio": h.store.Find(c.Request.Context(), model.DefaultScope, name),
	})
}
