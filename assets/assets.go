// Package assets holds the image-loading collaborators the renderer
// resolves tileset and background paths through.
package assets

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Loader decodes the image stored under name.
type Loader interface {
	LoadImage(name string) (image.Image, error)
}

// Files loads images from disk. Names are file paths, relative names are
// joined to Root.
type Files struct {
	Root string
}

func (f Files) LoadImage(name string) (image.Image, error) {
	if name == "" {
		return nil, errors.New("assets: empty image path")
	}
	p := filepath.FromSlash(name)
	if f.Root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(f.Root, p)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, errors.Wrapf(err, "assets: read %s", p)
	}
	return decode(b, p)
}

// DefaultExtensions are tried, in order, for extensionless bundle names.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg"}

// Bundle loads images by extensionless asset name from an fs.FS, the way a
// content pipeline addresses assets. Names that already carry an
// extension are looked up as-is.
type Bundle struct {
	fsys fs.FS
	exts []string
}

func NewBundle(fsys fs.FS, exts ...string) *Bundle {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return &Bundle{fsys: fsys, exts: exts}
}

func (b *Bundle) LoadImage(name string) (image.Image, error) {
	clean := cleanAssetPath(name)
	if clean == "" {
		return nil, errors.New("assets: empty asset name")
	}
	candidates := []string{clean}
	if path.Ext(clean) == "" {
		candidates = candidates[:0]
		for _, ext := range b.exts {
			candidates = append(candidates, clean+ext)
		}
	}
	for _, c := range candidates {
		data, err := fs.ReadFile(b.fsys, c)
		if err != nil {
			continue
		}
		return decode(data, c)
	}
	return nil, errors.Errorf("assets: no asset named %s", clean)
}

func decode(data []byte, name string) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "assets: decode %s", name)
	}
	return img, nil
}

// cleanAssetPath turns a path into an fs.FS name: forward slashes, no
// leading "./" or "assets/". Absolute paths are cut after "/assets/" when
// present and otherwise lose only their root, so subdirectories survive.
func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p[len(filepath.VolumeName(p)):])
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return path.Clean(s[idx+len("/assets/"):])
		}
		return strings.TrimLeft(path.Clean(s), "/")
	}
	s := path.Clean(filepath.ToSlash(p))
	s = strings.TrimPrefix(s, "assets/")
	if s == "." {
		return ""
	}
	return s
}
