package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline/ratio-service/internal/domain/model"
)

func TestAllocationValidityRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AllocationValidityRequest
		wantErr *ValidationError
	}{
		{
			name: "valid",
			req:  AllocationValidityRequest{Counts: model.SizeCounts{"S": 3, "M": 3}, Pack: 6},
		},
		{
			name: "zero pack with allow any",
			req:  AllocationValidityRequest{Counts: model.SizeCounts{"S": 3}, AllowAny: true},
		},
		{
			name:    "negative pack",
			req:     AllocationValidityRequest{Counts: model.SizeCounts{}, Pack: -1},
			wantErr: ErrInvalidPack,
		},
		{
			name:    "negative count",
			req:     AllocationValidityRequest{Counts: model.SizeCounts{"S": -2}, Pack: 6},
			wantErr: ErrNegativeCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Field)
		})
	}
}

func TestAllocationSplitRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AllocationSplitRequest
		wantErr *ValidationError
	}{
		{
			name: "valid",
			req:  AllocationSplitRequest{Sizes: []string{"S", "M", "L"}, Pack: 12},
		},
		{
			name:    "zero pack",
			req:     AllocationSplitRequest{Sizes: []string{"S"}},
			wantErr: ErrInvalidPack,
		},
		{
			name:    "no sizes",
			req:     AllocationSplitRequest{Pack: 12},
			wantErr: ErrNoSizes,
		},
		{
			name:    "negative count",
			req:     AllocationSplitRequest{Counts: model.SizeCounts{"S": -1}, Sizes: []string{"S"}, Pack: 12},
			wantErr: ErrNegativeCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Field)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "pack: must be a positive integer", ErrInvalidPack.Error())
}
