package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ldtkrender/assets"
	"github.com/milk9111/ldtkrender/common"
	"github.com/milk9111/ldtkrender/config"
	"github.com/milk9111/ldtkrender/gfx"
	"github.com/milk9111/ldtkrender/gfx/ebitengfx"
	"github.com/milk9111/ldtkrender/ldtk"
	"github.com/milk9111/ldtkrender/levels"
	"github.com/milk9111/ldtkrender/render"
	"github.com/milk9111/ldtkrender/watch"
)

const (
	// entityFrameTicks is how many updates each entity animation frame is held.
	entityFrameTicks = 8
	// cameraSmoothing is the share of the remaining pan covered per update.
	cameraSmoothing = 0.25
)

// Viewer is the ebiten game that shows one level.
type Viewer struct {
	cfg config.Config
	log *slog.Logger

	dev      *ebitengfx.Device
	renderer *render.Renderer
	watcher  *watch.Watcher

	level *ldtk.Level

	cam, camTarget common.Vec
	zoom           float64
	mirror         gfx.Mirror
	frames         int
	lastErr        error
}

func NewViewer(cfg config.Config, logger *slog.Logger) (*Viewer, error) {
	v := &Viewer{
		cfg:  cfg,
		log:  logger,
		dev:  ebitengfx.New(),
		zoom: cfg.Camera.Zoom,
	}
	if v.zoom <= 0 {
		v.zoom = 1
	}

	level, err := v.loadLevel()
	if err != nil {
		return nil, err
	}
	v.level = level
	v.renderer = render.New(v.dev, v.rendererOptions()...)
	v.renderer.PrerenderLevel(level)

	if cfg.Watch {
		if err := v.startWatcher(); err != nil {
			v.renderer.Close()
			return nil, err
		}
	}
	return v, nil
}

func (v *Viewer) rendererOptions() []render.Option {
	opts := []render.Option{
		render.WithLogger(v.log),
		render.WithIntGridColors(intGridColor),
	}
	switch {
	case v.cfg.Bundle != "":
		opts = append(opts, render.WithBundle(assets.NewBundle(os.DirFS(v.cfg.Bundle))))
	case v.cfg.Level == "":
		opts = append(opts, render.WithBundle(assets.NewBundle(levels.LevelsFS)))
	}
	if c, ok := v.cfg.Clear(); ok {
		opts = append(opts, render.WithBackgroundClear(c))
	}
	return opts
}

func (v *Viewer) loadLevel() (*ldtk.Level, error) {
	if v.cfg.Level == "" {
		return levels.LoadSample()
	}
	return ldtk.LoadLevel(v.cfg.Level)
}

func (v *Viewer) startWatcher() error {
	var dirs []string
	if v.cfg.Level != "" {
		dirs = append(dirs, filepath.Dir(v.cfg.Level))
	}
	if v.cfg.Bundle != "" {
		dirs = append(dirs, v.cfg.Bundle)
	}
	if len(dirs) == 0 {
		v.log.Warn("watch: nothing to watch for the embedded sample")
		return nil
	}
	w, err := watch.NewWatcher(dirs...)
	if err != nil {
		return err
	}
	v.watcher = w
	return nil
}

// reloadLevel reads the level again and replaces its composite. Cached
// images are kept.
func (v *Viewer) reloadLevel() {
	level, err := v.loadLevel()
	if err != nil {
		v.lastErr = err
		v.log.Error("reload failed", "error", err)
		// Keep showing the last good level.
		v.renderer.PrerenderLevel(v.level)
		return
	}
	v.lastErr = nil
	v.renderer.ForgetPrerendered(v.level.Identifier)
	v.level = level
	v.renderer.PrerenderLevel(level)
	v.log.Info("reloaded level", "level", level.Identifier)
}

// reloadImages drops cached images and every composite built from them.
func (v *Viewer) reloadImages() {
	v.renderer.ClearPrerendered()
	v.renderer.ClearImages()
	v.renderer.PrerenderLevel(v.level)
	v.log.Info("reloaded images", "level", v.level.Identifier)
}

func (v *Viewer) reloadAll() {
	v.renderer.ClearPrerendered()
	v.renderer.ClearImages()
	v.reloadLevel()
}

func (v *Viewer) pollWatcher() {
	if v.watcher == nil {
		return
	}
	var levelChanged, imagesChanged bool
	for {
		select {
		case ev := <-v.watcher.Events:
			v.log.Debug("watch: change", "path", ev.Path, "kind", ev.Kind)
			switch ev.Kind {
			case watch.LevelChanged:
				levelChanged = true
			case watch.ImageChanged:
				imagesChanged = true
			}
		case err := <-v.watcher.Errors:
			v.log.Warn("watch error", "error", err)
		default:
			switch {
			case levelChanged && imagesChanged:
				v.reloadAll()
			case levelChanged:
				v.reloadLevel()
			case imagesChanged:
				v.reloadImages()
			}
			return
		}
	}
}

func (v *Viewer) Update() error {
	v.frames++
	v.pollWatcher()

	var pan common.Vec
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		pan.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		pan.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		pan.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		pan.Y++
	}
	v.camTarget = v.camTarget.Add(pan.Scale(v.cfg.Camera.Speed / v.zoom))
	v.cam = common.LerpVec(v.cam, v.camTarget, cameraSmoothing)
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		v.zoom *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && v.zoom > 0.25 {
		v.zoom /= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.cfg.Debug.IntGrid = !v.cfg.Debug.IntGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		v.cfg.Debug.Entities = !v.cfg.Debug.Entities
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.mirror ^= gfx.MirrorHorizontal
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.reloadAll()
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.dev.SetScreen(screen)
	v.dev.SetCamera(v.cam.X, v.cam.Y, v.zoom)

	if err := v.renderer.DrawPrerenderedLevel(v.level); err != nil {
		v.log.Error("draw level", "level", v.level.Identifier, "error", err)
	}
	if v.cfg.Debug.IntGrid {
		for i := range v.level.Layers {
			if v.level.Layers[i].Type == ldtk.IntGridLayer {
				v.renderer.DrawIntGrid(ldtk.IntGridFromLayer(v.level, &v.level.Layers[i]))
			}
		}
	}
	if v.cfg.Debug.Entities {
		frame := v.frames / entityFrameTicks
		for i := range v.level.Entities {
			e := &v.level.Entities[i]
			img := v.renderer.Image(v.level, e.TilesetRelPath)
			v.renderer.DrawEntity(e, img, render.WithFrame(frame%entityFrames(e, img)), render.WithMirror(v.mirror))
		}
	}

	msg := fmt.Sprintf("%s  FPS: %.2f  zoom: %.2f  images: %d", v.level.Identifier, ebiten.ActualFPS(), v.zoom, v.renderer.CachedImages())
	if v.lastErr != nil {
		msg += "\n" + v.lastErr.Error()
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (v *Viewer) Close() {
	if v.watcher != nil {
		_ = v.watcher.Close()
	}
	v.renderer.ClearPrerendered()
	v.renderer.ClearImages()
	v.renderer.Close()
}

// entityFrames is the number of frames in an entity's strip: tiles of
// the entity's width running right from its tile rectangle. At least one.
func entityFrames(e *ldtk.Entity, img gfx.Surface) int {
	if e.Tile.Width <= 0 {
		return 1
	}
	if n := (img.Bounds().Dx() - e.Tile.X) / e.Tile.Width; n > 1 {
		return n
	}
	return 1
}

// intGridColor tints cell values for the debug overlay.
func intGridColor(value int) color.Color {
	switch value {
	case 1:
		return color.RGBA{R: 0xc0, G: 0x30, B: 0x60, A: 0x80}
	case 2:
		return color.RGBA{R: 0x30, G: 0x90, B: 0xc0, A: 0x80}
	default:
		return color.RGBA{R: 0x90, G: 0x90, B: 0x30, A: 0x80}
	}
}
