package render

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/milk9111/ldtkrender/gfx"
	"github.com/milk9111/ldtkrender/ldtk"
)

// Image resolves relPath against the level's directory and returns the
// decoded image, loading it once per relative path.
//
// An empty path, or a path that fails to load, yields the missing-image
// checkerboard. Failed loads are not cached.
func (r *Renderer) Image(level *ldtk.Level, relPath string) gfx.Surface {
	if relPath == "" {
		return r.missing
	}
	if s, ok := r.images[relPath]; ok {
		return s
	}

	name := r.assetName(level, relPath)
	img, err := r.loader.LoadImage(name)
	if err != nil {
		r.log.Warn("render: image load failed", "path", relPath, "asset", name, "error", err)
		return r.missing
	}

	s := r.dev.NewSurfaceFromImage(img)
	r.images[relPath] = s
	r.log.Debug("render: image loaded", "path", relPath, "asset", name, "bounds", s.Bounds())
	return s
}

// assetName joins relPath to the level directory. Bundles address
// assets without a file extension, and relative to the bundle root when
// the level directory is absolute.
func (r *Renderer) assetName(level *ldtk.Level, relPath string) string {
	dir := level.Dir()
	if r.bundle {
		p := filepath.ToSlash(relPath)
		p = strings.TrimSuffix(p, path.Ext(p))
		if filepath.IsAbs(dir) {
			return path.Clean(p)
		}
		return path.Join(filepath.ToSlash(dir), p)
	}
	return filepath.Join(dir, filepath.FromSlash(relPath))
}
