package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadline/ratio-service/internal/allocation"
	"github.com/threadline/ratio-service/internal/domain/dto"
	"github.com/threadline/ratio-service/internal/i18n"
)

// AllocationHandler provides HTTP handlers for pack/size allocation
// helpers used by order-entry clients.
type AllocationHandler struct{}

// NewAllocationHandler creates a new AllocationHandler instance.
func NewAllocationHandler() *AllocationHandler {
	return &AllocationHandler{}
}

// PackValidity handles POST /api/allocation/validity requests, reporting
// whether the entered size quantities add up to a whole number of packs
// and how many units are still needed.
func (h *AllocationHandler) PackValidity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AllocationValidityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	builder.SuccessOK(allocation.PackValidity(req.Counts, req.Pack, req.AllowAny))
}

// EvenSplit handles POST /api/allocation/split requests, spreading one
// pack of units as evenly as possible across the named sizes on top of
// the current quantities.
func (h *AllocationHandler) EvenSplit(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AllocationSplitRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	counts := allocation.EvenSplit(req.Counts, req.Sizes, req.Pack)
	builder.SuccessOK(gin.H{
		"counts": counts,
		"total":  allocation.Total(counts),
	})
}
