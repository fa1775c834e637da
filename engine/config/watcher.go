package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/transformation/engine/core"
)

// DefaultDebounce is how long the file must stay quiet after a write before
// it is reloaded.
const DefaultDebounce = 50 * time.Millisecond

// Watcher reloads a config file whenever it is written or recreated and
// publishes every successfully parsed version on Updates.
type Watcher struct {
	path     string
	debounce time.Duration
	fsnotify *fsnotify.Watcher
	updates  chan *Config
	errors   chan error

	mutex    sync.Mutex
	isClosed bool
	done     chan struct{}
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	return &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		fsnotify: fsWatch,
		updates:  make(chan *Config, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce changes the quiet period between the last write and the reload.
// Call it before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Updates delivers reloaded configs. Only the newest pending config is kept.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers reload failures. Only the newest pending error is kept.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Start runs the event loop until ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		defer w.Close()
		// A save is usually a truncate followed by one or more writes; only
		// reload once the burst is over.
		timer := time.NewTimer(w.debounce)
		timer.Stop()
		defer timer.Stop()
		var pending <-chan time.Time

		for {
			select {
			case e, ok := <-w.fsnotify.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != w.path {
					continue
				}
				if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
					timer.Reset(w.debounce)
					pending = timer.C
				}
				if e.Op&fsnotify.Remove != 0 {
					core.LogWarn("config %s removed, keeping last good config", w.path)
				}

			case <-pending:
				pending = nil
				w.reload()

			case err, ok := <-w.fsnotify.Errors:
				if !ok {
					return
				}
				core.LogError("config watcher: %s", err)
				publish(w.errors, err)

			case <-ctx.Done():
				return
			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		core.LogError("config reload failed: %s", err)
		publish(w.errors, err)
		return
	}
	// An empty file is a save caught between truncate and write, not a
	// request for the defaults.
	if len(bytes.TrimSpace(data)) == 0 {
		core.LogDebug("config %s is empty, waiting for content", w.path)
		return
	}
	cfg, err := Parse(data)
	if err != nil {
		err = fmt.Errorf("reload config %s: %w", w.path, err)
		core.LogError("config reload failed: %s", err)
		publish(w.errors, err)
		return
	}
	core.LogInfo("config %s reloaded", w.path)
	publish(w.updates, cfg)
}

// publish replaces any unread value so a slow reader only sees the latest one.
func publish[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("config watcher already closed")
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
