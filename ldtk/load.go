package ldtk

import (
	"encoding/json"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadLevel reads a level record from a JSON file on disk.
func LoadLevel(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ldtk: read level %s", path)
	}
	lvl, err := loadLevelFromBytes(b)
	if err != nil {
		return nil, errors.Wrapf(err, "ldtk: level %s", path)
	}
	lvl.WorldFilePath = path
	return lvl, nil
}

// LoadLevelFromFS reads a level record from an fs.FS (e.g. embedded levels).
// name is relative to the root of fsys.
func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	clean := path.Clean(filepath.ToSlash(name))
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, errors.Wrapf(err, "ldtk: read level %s", clean)
	}
	lvl, err := loadLevelFromBytes(b)
	if err != nil {
		return nil, errors.Wrapf(err, "ldtk: level %s", clean)
	}
	lvl.WorldFilePath = clean
	return lvl, nil
}

func loadLevelFromBytes(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, errors.Wrap(err, "unmarshal")
	}
	if lvl.Identifier == "" {
		return nil, errors.New("missing identifier")
	}
	if lvl.PixelWidth < 0 || lvl.PixelHeight < 0 {
		return nil, errors.Errorf("invalid level dimensions: %dx%d", lvl.PixelWidth, lvl.PixelHeight)
	}
	seen := make(map[string]struct{}, len(lvl.Layers))
	for i := range lvl.Layers {
		ly := &lvl.Layers[i]
		if ly.IID == "" {
			return nil, errors.Errorf("layer %d (%s): missing iid", i, ly.Identifier)
		}
		if _, dup := seen[ly.IID]; dup {
			return nil, errors.Errorf("layer %d (%s): duplicate iid %s", i, ly.Identifier, ly.IID)
		}
		seen[ly.IID] = struct{}{}
		if ly.GridSize <= 0 {
			return nil, errors.Errorf("layer %d (%s): invalid grid size %d", i, ly.Identifier, ly.GridSize)
		}
	}
	return &lvl, nil
}
