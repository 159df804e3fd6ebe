package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/threadline/ratio-service/internal/i18n"
	"github.com/threadline/ratio-service/internal/service"
)

// defaultEditsLimit caps the edit history page when no limit is given.
const defaultEditsLimit = 50

// EditsHandler provides HTTP handlers for the edit audit trail.
type EditsHandler struct {
	audit service.EditLogService
}

// NewEditsHandler creates a new EditsHandler instance.
func NewEditsHandler(audit service.EditLogService) *EditsHandler {
	return &EditsHandler{audit: audit}
}

// List handles GET /api/edits requests, returning the most recent edits
// newest first. Optional scope, garment, and limit query parameters
// narrow the result.
func (h *EditsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := int64(defaultEditsLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		limit = parsed
	}

	entries, err := h.audit.List(c.Request.Context(), c.Query("scope"), c.Query("garment"), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{
		"edits": entries,
		"count": len(entries),
	})
}
