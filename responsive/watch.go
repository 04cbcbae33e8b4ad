package responsive

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default coalescing window for config reloads.
// Editors often produce several write events per save; one reload per
// burst is enough.
const DefaultDebounce = 250 * time.Millisecond

// ConfigWatcher reloads a YAML design-token file whenever it changes and
// hands each successfully parsed Config to a callback. Intended for
// development, where tweaking baselines without restarting the app is
// the whole point.
type ConfigWatcher struct {
	path     string
	onChange func(Config)
	onError  func(error)
	debounce time.Duration

	fw *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// WatchOption configures a ConfigWatcher.
type WatchOption func(*ConfigWatcher)

// WithDebounce overrides the reload coalescing window.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *ConfigWatcher) { w.debounce = d }
}

// WithErrorHandler sets a callback for reload and watch errors. Without
// one, errors are dropped and the previous config simply stays active.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *ConfigWatcher) { w.onError = fn }
}

// WatchConfig starts watching path and calls onChange with each new valid
// config. The file's directory is watched rather than the file itself, so
// atomic save-and-rename editors keep working. Close releases the watcher.
func WatchConfig(path string, onChange func(Config), opts ...WatchOption) (*ConfigWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}

	w := &ConfigWatcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		debounce: DefaultDebounce,
		fw:       fw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	go w.loop()
	return w, nil
}

// Close stops watching. It is safe to call more than once.
func (w *ConfigWatcher) Close() error {
	w.mu.Lock()
	select {
	case <-w.done:
		w.mu.Unlock()
		return nil
	default:
		close(w.done)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fw.Close()
}

func (w *ConfigWatcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

// schedule arms (or re-arms) the debounce timer. Only the last event of a
// burst triggers a reload.
func (w *ConfigWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *ConfigWatcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}
	cfg, err := LoadConfig(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	w.onChange(cfg)
}

func (w *ConfigWatcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
