// Command pixlview renders a scene file into a desktop window and keeps the
// window in sync with the file.
//
// Usage:
//
//	pixlview -scene scene.yaml [-scale K] [-v]
//
// The frame buffer is scaled to the window with nearest-neighbor filtering.
// Saving the scene file re-renders it; a broken save keeps the last good
// frame and logs the error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/pixl"
	"github.com/gogpu/pixl/scenefile"
)

func main() {
	var (
		scene   = flag.String("scene", "", "scene file (.yaml, .yml or .toml)")
		scale   = flag.Int("scale", 2, "initial window scale factor")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *scene == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pixl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*scene, max(*scale, 1)); err != nil {
		log.Fatalf("pixlview: %v", err)
	}
}

func run(path string, scale int) error {
	s, err := scenefile.Load(path)
	if err != nil {
		return err
	}
	v := newViewer()
	if err := v.show(s); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := scenefile.Watch(ctx, path, func(s *scenefile.Scene, err error) {
			if err == nil {
				err = v.show(s)
			}
			if err != nil {
				pixl.Logger().Error("reload failed", "err", err)
			}
		})
		if err != nil {
			pixl.Logger().Error("watch stopped", "err", err)
		}
	}()

	w, h := v.size()
	ebiten.SetWindowTitle("pixl - " + path)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}
