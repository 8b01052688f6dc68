// Command pixl renders a scene file to PNG.
//
// Usage:
//
//	pixl -scene scene.yaml -o out.png [-width W -height H] [-aa] [-workers N] [-scale K] [-watch] [-v]
//
// Flags given on the command line override the values in the scene file.
// With -watch the scene is re-rendered every time the file changes, until
// the process is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/pixl"
	"github.com/gogpu/pixl/scenefile"
)

type config struct {
	scene   string
	output  string
	width   int
	height  int
	aa      bool
	workers int
	scale   int
	watch   bool
	verbose bool

	set map[string]bool // flags given explicitly
}

func main() {
	var cfg config
	flag.StringVar(&cfg.scene, "scene", "", "scene file (.yaml, .yml or .toml)")
	flag.StringVar(&cfg.output, "o", "out.png", "output PNG file")
	flag.IntVar(&cfg.width, "width", 0, "buffer width (overrides the scene file)")
	flag.IntVar(&cfg.height, "height", 0, "buffer height (overrides the scene file)")
	flag.BoolVar(&cfg.aa, "aa", false, "enable anti-aliasing (overrides the scene file)")
	flag.IntVar(&cfg.workers, "workers", 0, "row bands rendered concurrently (overrides the scene file)")
	flag.IntVar(&cfg.scale, "scale", 1, "integer upscale factor for the written PNG")
	flag.BoolVar(&cfg.watch, "watch", false, "re-render whenever the scene file changes")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	cfg.set = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })

	if cfg.scene == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	pixl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		log.Fatalf("pixl: %v", err)
	}
}

func run(cfg config) error {
	if cfg.scale < 1 {
		return fmt.Errorf("invalid -scale %d", cfg.scale)
	}

	s, err := scenefile.Load(cfg.scene)
	if err != nil {
		return err
	}
	if err := renderOnce(cfg, s); err != nil {
		return err
	}
	if !cfg.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pixl.Logger().Info("watching for changes", "scene", cfg.scene)
	return scenefile.Watch(ctx, cfg.scene, func(s *scenefile.Scene, err error) {
		if err != nil {
			pixl.Logger().Error("reload failed", "err", err)
			return
		}
		if err := renderOnce(cfg, s); err != nil {
			pixl.Logger().Error("render failed", "err", err)
		}
	})
}

// apply overlays explicitly given flags on the scene's own settings.
func (cfg config) apply(s *scenefile.Scene) {
	if cfg.set["width"] {
		s.Width = cfg.width
	}
	if cfg.set["height"] {
		s.Height = cfg.height
	}
	if cfg.set["aa"] {
		s.AntiAlias = cfg.aa
	}
	if cfg.set["workers"] {
		s.Workers = cfg.workers
	}
}

func renderOnce(cfg config, s *scenefile.Scene) error {
	cfg.apply(s)
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New("scene has no size; set width and height in the file or with -width/-height")
	}

	start := time.Now()
	fb, err := s.Render()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writePNG(cfg.output, fb, cfg.scale); err != nil {
		return err
	}
	pixl.Logger().Info("rendered",
		"output", cfg.output,
		"width", fb.Width(),
		"height", fb.Height(),
		"scale", cfg.scale,
		"elapsed", elapsed)
	return nil
}

func writePNG(path string, fb *pixl.FrameBuffer, scale int) error {
	if scale == 1 {
		return fb.SavePNG(path)
	}
	img := fb.Scaled(fb.Width()*scale, fb.Height()*scale, nil)

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
