package levels

import (
	"testing"

	"github.com/milk9111/ldtkrender/assets"
	"github.com/milk9111/ldtkrender/ldtk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleLevel(t *testing.T) {
	lvl, err := LoadSample()
	require.NoError(t, err)

	assert.Equal(t, "Sample_Level_0", lvl.Identifier)
	assert.Equal(t, 320, lvl.PixelWidth)
	assert.Equal(t, 192, lvl.PixelHeight)
	require.Len(t, lvl.Layers, 3)
	assert.Equal(t, ldtk.Entities, lvl.Layers[0].Type)
	assert.Equal(t, ldtk.Tiles, lvl.Layers[1].Type)
	assert.Equal(t, ldtk.IntGridLayer, lvl.Layers[2].Type)
	require.Len(t, lvl.Entities, 1)

	grid := ldtk.IntGridFromLayer(lvl, &lvl.Layers[2])
	assert.Equal(t, 1, grid.At(0, 11))
	assert.Equal(t, 2, grid.At(6, 6))
	assert.Equal(t, 0, grid.At(0, 0))

	b := assets.NewBundle(LevelsFS)
	for _, name := range []string{"tiles", "bg"} {
		img, err := b.LoadImage(name)
		require.NoError(t, err, name)
		assert.False(t, img.Bounds().Empty(), name)
	}
}
