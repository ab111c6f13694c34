package driver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"nvgtls/internal/inspect"
	"nvgtls/internal/settings"
)

// WatchEvent is delivered after every (re-)inspection round.
type WatchEvent struct {
	// Changed lists the paths that triggered the round; empty for the initial one.
	Changed []string
	// SettingsReloaded is set when the configuration file changed.
	SettingsReloaded bool
	Results          []*inspect.Result
	Err              error
}

type WatchOptions struct {
	Roots      []string
	ConfigPath string
	Debounce   time.Duration
	OnRound    func(WatchEvent)
	// LoadSettings defaults to settings.Load.
	LoadSettings func(path string) (settings.Settings, error)
}

// Watcher re-inspects scripts when they, or the settings file, change.
// Every change clears the inspector cache (except the predefined file) so
// that edits to included files are picked up by their includers.
type Watcher struct {
	watcher *fsnotify.Watcher
	in      *inspect.Inspector
	opts    WatchOptions
	tracked map[string]struct{}
}

func NewWatcher(in *inspect.Inspector, opts WatchOptions) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 100 * time.Millisecond
	}
	if opts.LoadSettings == nil {
		opts.LoadSettings = settings.Load
	}
	if opts.OnRound == nil {
		opts.OnRound = func(WatchEvent) {}
	}
	if opts.ConfigPath != "" {
		if abs, err := filepath.Abs(opts.ConfigPath); err == nil {
			opts.ConfigPath = abs
		}
	}
	return &Watcher{
		watcher: fsWatcher,
		in:      in,
		opts:    opts,
		tracked: make(map[string]struct{}),
	}, nil
}

// Run inspects every script under the roots, then processes changes until
// ctx is done. The underlying watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if w.opts.ConfigPath != "" {
		if err := w.watcher.Add(filepath.Dir(w.opts.ConfigPath)); err != nil {
			log.Errorf("failed to watch config dir: %s", err)
		} else {
			log.Infof("watching config: %s", w.opts.ConfigPath)
		}
	}
	for _, root := range w.opts.Roots {
		if err := w.watchRecursive(root); err != nil {
			return err
		}
		log.Infof("watching scripts: %s", root)
	}

	files, err := ListScripts(w.opts.Roots)
	if err != nil {
		return err
	}
	for _, f := range files {
		w.tracked[w.abs(f)] = struct{}{}
	}
	w.opts.OnRound(w.round(nil, false))

	return w.eventLoop(ctx)
}

// watchRecursive adds a directory and its subdirectories to the watch list.
func (w *Watcher) watchRecursive(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.watcher.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// eventLoop collects events until they settle for the debounce interval,
// then runs one inspection round for the whole batch.
func (w *Watcher) eventLoop(ctx context.Context) error {
	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			path := w.abs(event.Name)
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(path); err == nil && info.IsDir() {
					_ = w.watchRecursive(path)
					continue
				}
			}
			if !w.relevant(path, event) {
				continue
			}
			pending[path] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = make(map[string]struct{})
			w.opts.OnRound(w.apply(changed))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *Watcher) relevant(path string, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return path == w.opts.ConfigPath || IsScript(path)
}

// apply updates the tracked set and settings for changed, then re-inspects.
func (w *Watcher) apply(changed []string) WatchEvent {
	reloaded := false
	for _, path := range changed {
		if path == w.opts.ConfigPath {
			s, err := w.opts.LoadSettings(path)
			if err != nil {
				log.Errorf("settings not reloaded: %s", err)
				return WatchEvent{Changed: changed, Err: err}
			}
			w.in.ApplySettings(s)
			reloaded = true
			continue
		}
		if _, err := os.Stat(path); err != nil {
			delete(w.tracked, path)
			continue
		}
		if w.underRoots(path) {
			w.tracked[path] = struct{}{}
		}
	}
	return w.round(changed, reloaded)
}

// round clears the cache and re-inspects every tracked script.
func (w *Watcher) round(changed []string, reloaded bool) WatchEvent {
	w.in.ClearCache()
	paths := make([]string, 0, len(w.tracked))
	for p := range w.tracked {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	results, err := InspectFiles(context.Background(), w.in, paths)
	if err != nil {
		log.Errorf("inspection round failed: %s", err)
	}
	return WatchEvent{Changed: changed, SettingsReloaded: reloaded, Results: results, Err: err}
}

func (w *Watcher) underRoots(path string) bool {
	for _, root := range w.opts.Roots {
		r := w.abs(root)
		if path == r || strings.HasPrefix(path, r+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) abs(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
