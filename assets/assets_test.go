package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"tiles.png", "tiles.png"},
		{"./world/tiles", "world/tiles"},
		{"assets/world/tiles", "world/tiles"},
		{"/home/me/game/assets/world/tiles.png", "world/tiles.png"},
		{"/tmp/tiles.png", "tmp/tiles.png"},
		{"/srv/a/tiles", "srv/a/tiles"},
		{"/", ""},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, cleanAssetPath(c.in))
		})
	}
}

func TestBundleLoadsExtensionlessNames(t *testing.T) {
	fsys := fstest.MapFS{
		"world/tiles.png": {Data: pngBytes(t, 4, 2, color.RGBA{R: 0xff, A: 0xff})},
		"bg.png":          {Data: pngBytes(t, 1, 1, color.RGBA{B: 0xff, A: 0xff})},
		"broken.png":      {Data: []byte("not a png")},
	}
	b := NewBundle(fsys)

	img, err := b.LoadImage("world/tiles")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	img, err = b.LoadImage("./bg.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())

	_, err = b.LoadImage("world/missing")
	assert.Error(t, err)
	_, err = b.LoadImage("broken")
	assert.Error(t, err)
	_, err = b.LoadImage("")
	assert.Error(t, err)
}

func TestBundleCustomExtensions(t *testing.T) {
	fsys := fstest.MapFS{"tiles.img": {Data: pngBytes(t, 2, 2, color.RGBA{G: 0xff, A: 0xff})}}
	b := NewBundle(fsys, ".img")

	_, err := b.LoadImage("tiles")
	require.NoError(t, err)
}

func TestFilesLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "world"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "world", "tiles.png"), pngBytes(t, 3, 5, color.RGBA{A: 0xff}), 0o644))

	img, err := Files{Root: dir}.LoadImage("world/tiles.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 5), img.Bounds())

	img, err = Files{}.LoadImage(filepath.Join(dir, "world", "tiles.png"))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())

	_, err = Files{Root: dir}.LoadImage("world/missing.png")
	assert.Error(t, err)
	_, err = Files{}.LoadImage("")
	assert.Error(t, err)
}
