package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline/ratio-service/internal/domain/model"
)

func TestScopeCachePutGet(t *testing.T) {
	cache := NewScopeCache()

	_, ok := cache.get("acme-fest")
	assert.False(t, ok)

	cache.put("acme-fest", []model.GarmentRatio{testRatio("Hoodie", 4, "S-XL", map[string]int{"S": 1, "M": 1, "L": 1, "XL": 1})})

	entry, ok := cache.get("acme-fest")
	require.True(t, ok)
	assert.NotNil(t, entry.find("HOODIE"))
	assert.Nil(t, entry.find("Crewneck"))
	assert.Equal(t, 1, cache.Len())
}

func TestScopeCacheInvalidateSelective(t *testing.T) {
	cache := NewScopeCache()
	cache.put("a", nil)
	cache.put("b", nil)

	cache.invalidate("a")
	_, ok := cache.get("a")
	assert.False(t, ok)
	_, ok = cache.get("b")
	assert.True(t, ok)

	cache.invalidate()
	assert.Zero(t, cache.Len())
}

func TestScopeCacheConcurrentAccess(t *testing.T) {
	cache := NewScopeCache()
	ratios := []model.GarmentRatio{testRatio("Hoodie", 4, "S-XL", map[string]int{"S": 1, "M": 1, "L": 1, "XL": 1})}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.put("acme-fest", ratios)
				cache.get("acme-fest")
				cache.invalidate("acme-fest")
			}
		}()
	}
	wg.Wait()
}
