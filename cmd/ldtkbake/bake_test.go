package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestBakeSample(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "level.png")
	layers := filepath.Join(dir, "layers")

	res, err := bake(bakeOptions{Out: out, LayersDir: layers, Entities: true, IntGrid: true, Log: quietLogger()})
	require.NoError(t, err)

	assert.Equal(t, "Sample_Level_0", res.Level)
	assert.Equal(t, image.Pt(320, 192), res.Size)
	// background, collisions, details
	assert.Equal(t, 3, res.Surfaces)
	require.Len(t, res.Files, 4)

	img := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 320, 192), img.Bounds())
	_, _, _, a := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), a, "background covers the level")

	for _, f := range res.Files[1:] {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}
	bg := readPNG(t, res.Files[1])
	assert.Equal(t, image.Rect(0, 0, 320, 192), bg.Bounds())
}

func TestBakeClearColor(t *testing.T) {
	dir := t.TempDir()
	levelPath := filepath.Join(dir, "level.json")
	require.NoError(t, os.WriteFile(levelPath, []byte(`{
		"identifier": "Blank",
		"position": {"x": 512, "y": 512},
		"pixel_width": 8,
		"pixel_height": 4,
		"bg_rel_path": "missing.png"
	}`), 0o644))

	bg := color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}
	out := filepath.Join(dir, "out.png")
	res, err := bake(bakeOptions{Level: levelPath, Out: out, Clear: &bg, Log: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Surfaces)

	img := readPNG(t, out)
	r, g, b, _ := img.At(7, 3).RGBA()
	assert.Equal(t, [3]uint32{0x1111, 0x2222, 0x3333}, [3]uint32{r, g, b})
}

func TestBakeErrors(t *testing.T) {
	_, err := bake(bakeOptions{Level: filepath.Join(t.TempDir(), "nope.json"), Log: quietLogger()})
	assert.Error(t, err)

	dir := t.TempDir()
	levelPath := filepath.Join(dir, "level.json")
	require.NoError(t, os.WriteFile(levelPath, []byte(`{"identifier": "Zero"}`), 0o644))
	_, err = bake(bakeOptions{Level: levelPath, Log: quietLogger()})
	assert.Error(t, err)
}
