package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline/ratio-service/internal/domain/model"
)

func TestPackValidityEndpoint(t *testing.T) {
	router, _ := newTestRouter(newMemScopeRepo())

	tests := []struct {
		name        string
		body        map[string]interface{}
		wantValid   bool
		wantTotal   int
		wantNeeded  int
	}{
		{
			name:      "exact pack",
			body:      map[string]interface{}{"counts": map[string]int{"S": 5, "M": 7}, "pack": 12},
			wantValid: true, wantTotal: 12,
		},
		{
			name:       "one short",
			body:       map[string]interface{}{"counts": map[string]int{"S": 5, "M": 6}, "pack": 12},
			wantValid:  false, wantTotal: 11, wantNeeded: 1,
		},
		{
			name:       "empty reports whole pack",
			body:       map[string]interface{}{"counts": map[string]int{}, "pack": 7},
			wantValid:  true, wantTotal: 0, wantNeeded: 7,
		},
		{
			name:      "allow any ignores pack",
			body:      map[string]interface{}{"counts": map[string]int{"S": 5}, "pack": 12, "allow_any": true},
			wantValid: true, wantTotal: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/allocation/validity", tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp model.PackValidity
			decodeData(t, w, &resp)
			assert.Equal(t, tt.wantValid, resp.IsValid)
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Equal(t, tt.wantNeeded, resp.Needed)
		})
	}
}

func TestPackValidityEndpointRejectsNegativeCounts(t *testing.T) {
	router, _ := newTestRouter(newMemScopeRepo())

	w := doJSON(router, http.MethodPost, "/api/allocation/validity", map[string]interface{}{
		"counts": map[string]int{"S": -3},
		"pack":   12,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvenSplitEndpoint(t *testing.T) {
	router, _ := newTestRouter(newMemScopeRepo())

	w := doJSON(router, http.MethodPost, "/api/allocation/split", map[string]interface{}{
		"counts": map[string]int{"S": 1},
		"sizes":  []string{"S", "M", "L", "XL", "XXL"},
		"pack":   12,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Counts model.SizeCounts `json:"counts"`
		Total  int              `json:"total"`
	}
	decodeData(t, w, &resp)
	// 12 over 5 sizes: 3,3,2,2,2 on top of the existing S=1.
	assert.Equal(t, model.SizeCounts{"S": 4, "M": 3, "L": 2, "XL": 2, "XXL": 2}, resp.Counts)
	assert.Equal(t, 13, resp.Total)
}

func TestEvenSplitEndpointRequiresSizes(t *testing.T) {
	router, _ := newTestRouter(newMemScopeRepo())

	w := doJSON(router, http.MethodPost, "/api/allocation/split", map[string]interface{}{
		"counts": map[string]int{},
		"pack":   12,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
