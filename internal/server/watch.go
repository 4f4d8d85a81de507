package server

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/synthesis/internal/content"
)

// reloadDelay coalesces the burst of events an editor produces on save.
const reloadDelay = 100 * time.Millisecond

// watcher reloads the content file when it changes on disk.
type watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup
}

// watchContent starts watching path. A file that fails to load is logged and
// the server keeps the previous content.
func (s *Server) watchContent(path string) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &watcher{fs: fw, done: make(chan struct{})}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		var pending <-chan time.Time
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					pending = time.After(reloadDelay)
				}
			case <-pending:
				pending = nil
				s.reload(path)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				s.log.Warn("content watcher", "error", err)
			case <-w.done:
				return
			}
		}
	}()

	s.log.Info("watching content", "file", path)
	return w, nil
}

// reload loads path and swaps it in when it is valid.
func (s *Server) reload(path string) {
	c, err := content.Load(path)
	if err != nil {
		s.log.Error("content reload failed, keeping previous content", "file", path, "error", err)
		return
	}
	s.SetContent(c)
	s.log.Info("content reloaded", "file", path)
}

// Close stops the watcher and waits for its goroutine.
func (w *watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
