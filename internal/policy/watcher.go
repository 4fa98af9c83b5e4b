package policy

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a policy file when it changes on disk. Long-running modes
// (interactive, run) use it so keyword edits take effect without a restart.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}

	mu      sync.RWMutex
	current *Policy
}

// NewWatcher loads the policy at path and starts watching its directory.
// Watching the directory rather than the file survives editors that replace
// the file on save.
func NewWatcher(path string) (*Watcher, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:    path,
		done:    make(chan struct{}),
		current: p,
	}

	if path == "" {
		// Nothing to watch; Current serves the defaults.
		return w, nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		// Continue without live reload.
		return w, nil
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return w, nil
	}
	w.watcher = fw

	go w.watch()
	return w, nil
}

// Current returns the most recently loaded policy.
func (w *Watcher) Current() *Policy {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Close stops watching.
func (w *Watcher) Close() {
	close(w.done)
	if w.watcher != nil {
		w.watcher.Close()
	}
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			p, err := Load(w.path)
			if err != nil {
				log.Printf("policy reload failed: %v", err)
				continue
			}
			w.mu.Lock()
			w.current = p
			w.mu.Unlock()
		case <-w.watcher.Errors:
			// Ignore errors, keep watching
		}
	}
}
