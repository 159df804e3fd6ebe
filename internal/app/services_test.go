package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline/ratio-service/internal/domain/model"
)

func TestInitializeServicesWithoutDatabase(t *testing.T) {
	services := InitializeServices(nil)

	require.NotNil(t, services.Store)
	require.NotNil(t, services.Resolver)
	require.NotNil(t, services.Cache)
	assert.Nil(t, services.Audit)

	// The store serves the bundled dataset.
	ratio := services.Store.Find(context.Background(), model.DefaultScope, "Hoodie")
	require.NotNil(t, ratio)
	assert.Equal(t, 8, ratio.PackSize())

	// Writes are refused without a backend.
	err := services.Store.Write(context.Background(), "acme-fest", "Hoodie", model.GarmentRatio{})
	assert.Error(t, err)
}
