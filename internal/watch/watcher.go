// Package watch reloads engine inputs when their files change on disk.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a file must be quiet before its change is reported.
const Debounce = 100 * time.Millisecond

// Change reports that a watched file was written, created or removed.
type Change struct {
	File    string // cleaned absolute path
	Removed bool
}

// Watcher monitors a fixed set of files. It watches their parent
// directories so editors that replace files atomically are still seen.
type Watcher struct {
	Changes <-chan Change // Read-only external channel

	files   map[string]struct{}
	changes chan Change
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for files. Relative paths are resolved
// against the working directory.
func NewWatcher(files ...string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("watch: no files")
	}
	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %s: %w", f, err)
		}
		set[filepath.Clean(abs)] = struct{}{}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Changes: ch,
		files:   set,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Files returns the watched paths in sorted order.
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Start begins watching.
func (w *Watcher) Start() error {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for d := range dirs {
		if err := w.watcher.Add(d); err != nil {
			return fmt.Errorf("watch: add %s: %w", d, err)
		}
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(Debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			name := filepath.Clean(event.Name)
			if _, tracked := w.files[name]; !tracked {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= Debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) emit(file string) {
	_, err := os.Stat(file)
	w.changes <- Change{File: file, Removed: os.IsNotExist(err)}
}
