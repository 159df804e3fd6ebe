package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline/ratio-service/internal/garment"
	"github.com/threadline/ratio-service/internal/sizescale"
)

func TestDefaultRatiosAreBalanced(t *testing.T) {
	for _, ratio := range DefaultRatios() {
		ratio := ratio
		t.Run(ratio.Name, func(t *testing.T) {
			assert.True(t, ValidateRatio(&ratio))
		})
	}
}

func TestDefaultRatiosCoverEveryGarmentIdentifier(t *testing.T) {
	byName := make(map[string]bool)
	for _, ratio := range DefaultRatios() {
		byName[ratio.Name] = true
	}

	identifiers := []string{
		garment.ShortSleeveShirt, garment.LongSleeveShirt,
		garment.Hoodie, garment.Crewneck,
		garment.Sweatpant, garment.Jogger,
		garment.Jacket, garment.Flannel,
		garment.Sock, garment.Short, garment.InfantTee,
		garment.Sticker, garment.Plush, garment.Bottle, garment.DisplayRack,
	}
	for _, id := range identifiers {
		assert.True(t, byName[id], "missing default rule for %s", id)
	}
	assert.Len(t, DefaultRatios(), len(identifiers))
}

func TestDefaultRatiosHaveWellFormedScales(t *testing.T) {
	for _, ratio := range DefaultRatios() {
		scale := ratio.Scale()
		require.NotEmpty(t, scale, "%s has no scale token", ratio.Name)
		if scale == sizescale.NotApplicable {
			continue
		}
		assert.NotEmpty(t, sizescale.Expand(scale), "%s scale %q does not expand", ratio.Name, scale)
	}
}

func TestDefaultRatiosReturnsFreshCopies(t *testing.T) {
	a := DefaultRatios()
	a[0].SetPack = nil

	b := DefaultRatios()
	require.NotNil(t, b[0].SetPack)
}
