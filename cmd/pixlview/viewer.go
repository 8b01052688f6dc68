package main

import (
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/pixl/scenefile"
)

// viewer is an ebiten.Game presenting the latest rendered frame. Frames
// arrive from the watcher goroutine through show.
type viewer struct {
	mu    sync.Mutex
	frame []byte // premultiplied RGBA, as ebiten expects
	w, h  int
	dirty bool

	img *ebiten.Image
}

func newViewer() *viewer {
	return &viewer{}
}

// show renders s and queues the frame for the next Draw.
func (v *viewer) show(s *scenefile.Scene) error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New("scene has no size")
	}
	fb, err := s.Render()
	if err != nil {
		return err
	}
	frame := fb.ToRGBA().Pix

	v.mu.Lock()
	v.frame, v.w, v.h, v.dirty = frame, fb.Width(), fb.Height(), true
	v.mu.Unlock()
	return nil
}

func (v *viewer) size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.w, v.h
}

func (v *viewer) Update() error {
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	if v.dirty {
		if v.img == nil || v.img.Bounds().Dx() != v.w || v.img.Bounds().Dy() != v.h {
			if v.img != nil {
				v.img.Deallocate()
			}
			v.img = ebiten.NewImage(v.w, v.h)
		}
		v.img.WritePixels(v.frame)
		v.dirty = false
	}
	v.mu.Unlock()

	if v.img != nil {
		screen.DrawImage(v.img, nil)
	}
}

// Layout keeps the logical screen at the buffer size so ebiten scales the
// frame to the window.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := v.size()
	if w == 0 || h == 0 {
		return outsideWidth, outsideHeight
	}
	return w, h
}
