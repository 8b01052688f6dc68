package scenefile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/pixl"
)

// DefaultDebounce is how long Watch waits after the last change event
// before reloading. Editors often emit several events per save.
const DefaultDebounce = 50 * time.Millisecond

// Watch reloads the scene at path whenever the file changes and passes the
// result to fn, until ctx is done. fn runs on the watching goroutine; a
// failed reload is reported through its error argument and watching
// continues.
//
// The parent directory is watched rather than the file so saves that
// replace the file by rename are seen.
func Watch(ctx context.Context, path string, fn func(*Scene, error)) error {
	return WatchDebounce(ctx, path, DefaultDebounce, fn)
}

// WatchDebounce is Watch with an explicit debounce interval.
func WatchDebounce(ctx context.Context, path string, debounce time.Duration, fn func(*Scene, error)) error {
	if _, err := FormatFor(path); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("scenefile: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scenefile: watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("scenefile: watch %s: %w", filepath.Dir(abs), err)
	}
	pixl.Logger().Debug("scenefile: watching", "path", abs)

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				reload = time.After(debounce)
			}

		case <-reload:
			reload = nil
			s, err := Load(abs)
			if err != nil {
				pixl.Logger().Warn("scenefile: reload failed", "path", abs, "err", err)
			} else {
				pixl.Logger().Debug("scenefile: reloaded", "path", abs)
			}
			fn(s, err)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			pixl.Logger().Warn("scenefile: watch error", "err", err)
		}
	}
}
