// Package watch reports changes to level and image files on disk so that
// cached composites can be rebuilt.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce drops repeated events for the same file inside this window.
const Debounce = 100 * time.Millisecond

// Kind says which cache a change invalidates.
type Kind int

const (
	// LevelChanged is a level record on disk. The level must be reloaded
	// and prerendered again.
	LevelChanged Kind = iota + 1
	// ImageChanged is a tileset or background image. Cached images and
	// every composite built from them are stale.
	ImageChanged
)

func (k Kind) String() string {
	switch k {
	case LevelChanged:
		return "level"
	case ImageChanged:
		return "image"
	}
	return "unknown"
}

// Event is one debounced change.
type Event struct {
	Path string
	Kind Kind
}

// Classify returns the kind of change a write to path represents, or
// false for files the renderer never reads.
func Classify(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".ldtkl":
		return LevelChanged, true
	case ".png", ".jpg", ".jpeg":
		return ImageChanged, true
	}
	return 0, false
}

// Watcher watches directories for level and image changes. Events and
// Errors are closed by Close.
type Watcher struct {
	fs     *fsnotify.Watcher
	Events chan Event
	Errors chan error

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:     fw,
		Events: make(chan Event, 16),
		Errors: make(chan error, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	d := debouncer{last: make(map[string]time.Time)}
	for {
		select {
		case fe, ok := <-w.fs.Events:
			if !ok {
				return
			}
			ev, ok := toEvent(fe)
			if !ok || !d.allow(ev.Path, time.Now()) {
				continue
			}
			select {
			case w.Events <- ev:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

func toEvent(fe fsnotify.Event) (Event, bool) {
	if fe.Op&relevantOps == 0 {
		return Event{}, false
	}
	kind, ok := Classify(fe.Name)
	if !ok {
		return Event{}, false
	}
	return Event{Path: fe.Name, Kind: kind}, true
}

type debouncer struct {
	last map[string]time.Time
}

func (d debouncer) allow(path string, now time.Time) bool {
	if t, ok := d.last[path]; ok && now.Sub(t) < Debounce {
		return false
	}
	d.last[path] = now
	return true
}
