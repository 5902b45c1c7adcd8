// Package config loads the viewer configuration from YAML.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window Window `yaml:"window"`

	// Level is a level JSON file. Empty loads the embedded sample.
	Level string `yaml:"level"`
	// Bundle is a directory of extensionless assets. When set, images are
	// resolved through it instead of next to the level file.
	Bundle string `yaml:"bundle"`

	// ClearColor is the background clear color, "#rrggbb" or "#rrggbbaa".
	ClearColor string `yaml:"clear_color"`

	Debug  Debug  `yaml:"debug"`
	Watch  bool   `yaml:"watch"`
	Camera Camera `yaml:"camera"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Debug struct {
	IntGrid  bool `yaml:"intgrid"`
	Entities bool `yaml:"entities"`
	Log      bool `yaml:"log"`
}

type Camera struct {
	Speed float64 `yaml:"speed"`
	Zoom  float64 `yaml:"zoom"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "ldtkview"},
		Debug:  Debug{Entities: true},
		Camera: Camera{Speed: 4, Zoom: 2},
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: load %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: unmarshal %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Zoom < 0 {
		return errors.Errorf("invalid camera zoom %v", c.Camera.Zoom)
	}
	if _, _, err := ParseHexColor(c.ClearColor); err != nil {
		return err
	}
	return nil
}

// Clear returns the parsed clear color and whether one is set.
func (c Config) Clear() (color.RGBA, bool) {
	col, ok, err := ParseHexColor(c.ClearColor)
	if err != nil {
		return color.RGBA{}, false
	}
	return col, ok
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The empty string is
// valid and reports ok == false.
func ParseHexColor(s string) (color.RGBA, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, false, nil
	}
	if s[0] != '#' || (len(s) != 7 && len(s) != 9) {
		return color.RGBA{}, false, errors.Errorf("invalid color %q", s)
	}
	var r, g, b uint8
	a := uint8(0xff)
	if _, err := fmt.Sscanf(s[1:7], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false, errors.Wrapf(err, "invalid color %q", s)
	}
	if len(s) == 9 {
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return color.RGBA{}, false, errors.Wrapf(err, "invalid color %q", s)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, true, nil
}
