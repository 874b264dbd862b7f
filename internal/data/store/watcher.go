package store

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mhowell/go-timetrack/internal/util"
)

// FileEvent reports a change to one of the watched store files.
type FileEvent struct {
	Path      string
	Operation string
}

// Watcher notifies about writes to the data and settings files so views
// can refresh. The recording subsystem rewrites data.json wholesale, so
// watching the containing directories catches replace-by-rename too.
type Watcher struct {
	watcher *fsnotify.Watcher
	watched map[string]bool
	events  chan FileEvent
}

// NewWatcher watches the given files.
func NewWatcher(paths ...string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: watcher,
		watched: make(map[string]bool, len(paths)),
		events:  make(chan FileEvent, 100),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		w.watched[filepath.Clean(path)] = true
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go w.processEvents()

	return w, nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.events <- FileEvent{
				Path:      event.Name,
				Operation: event.Op.String(),
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log and keep watching.
			util.LogError("Store watch error: " + err.Error())
		}
	}
}

// Events returns the change notification channel.
func (w *Watcher) Events() <-chan FileEvent {
	return w.events
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
