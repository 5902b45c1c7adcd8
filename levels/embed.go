// Package levels embeds a sample level and the images it references.
package levels

import (
	"embed"

	"github.com/milk9111/ldtkrender/ldtk"
)

//go:embed *.json *.png
var LevelsFS embed.FS

// Sample is the name of the embedded sample level.
const Sample = "sample.json"

// LoadSample loads the embedded sample level. Its image paths resolve
// inside LevelsFS.
func LoadSample() (*ldtk.Level, error) {
	return ldtk.LoadLevelFromFS(LevelsFS, Sample)
}
