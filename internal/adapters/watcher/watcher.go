// Package watcher implements source tree watching for watch mode using
// fsnotify.
package watcher

import (
	"io/fs"
	"path/filepath"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/Milun/adapt-framework/internal/core/ports"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// Watcher implements ports.Watcher on top of fsnotify, watching a directory
// tree recursively and forwarding changes to source files and plugin
// manifests.
type Watcher struct {
	inner  *fsnotify.Watcher
	events chan string
	done   chan struct{}
}

// New creates a new Watcher.
func New() (*Watcher, error) {
	inner, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}

	w := &Watcher{
		inner:  inner,
		events: make(chan string, 64),
		done:   make(chan struct{}),
	}
	go w.forward()
	return w, nil
}

// Add starts watching the directory tree rooted at root. New subdirectories
// created while watching are picked up as they appear.
func (w *Watcher) Add(root string) error {
	return filepath.WalkDir(filepath.FromSlash(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk watch root"), "path", path)
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.inner.Add(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", path)
		}
		return nil
	})
}

// Events delivers the paths of changed source files.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors delivers watcher failures.
func (w *Watcher) Errors() <-chan error {
	return w.inner.Errors
}

// Close releases the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.inner.Close()
}

func (w *Watcher) forward() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.inner.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				// Best effort: a new directory joins the watch set.
				_ = w.inner.Add(ev.Name)
			}
			if !relevant(ev.Name) {
				continue
			}
			select {
			case w.events <- filepath.ToSlash(ev.Name):
			case <-w.done:
				return
			}
		}
	}
}

func relevant(name string) bool {
	if filepath.Base(name) == domain.PluginManifestName {
		return true
	}
	return domain.HasSourceExtension(name)
}
