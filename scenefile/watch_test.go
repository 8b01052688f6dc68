package scenefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 10\nheight: 10\nroot: {}\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Scene, 16)
	done := make(chan error, 1)
	go func() {
		done <- WatchDebounce(ctx, path, 10*time.Millisecond, func(s *Scene, err error) {
			if err != nil {
				return
			}
			select {
			case got <- s:
			default:
			}
		})
	}()

	// The watcher may not be registered yet, so keep rewriting until a
	// reload arrives.
	update := []byte("width: 42\nheight: 10\nroot: {}\n")
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	var s *Scene
wait:
	for {
		select {
		case s = <-got:
			if s.Width == 42 {
				break wait
			}
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, update, 0o600))
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
	assert.Equal(t, 42, s.Width)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchRejectsUnknownFormat(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "scene.txt"), func(*Scene, error) {})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
