package pixl

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/gogpu/pixl/internal/parallel"
)

// Renderer runs render passes: it walks a node tree in pre-order,
// accumulates transforms and rasterizes every visible shape into a
// FrameBuffer using the painter's algorithm.
//
// A Renderer may be reused for many passes and by several goroutines, as
// long as each pass gets its own buffer. Call Close to release worker
// goroutines started by WithWorkers.
type Renderer struct {
	opts   renderOptions
	raster Rasterizer

	mu     sync.Mutex
	pool   *parallel.WorkerPool
	closed bool
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		opts:   o,
		raster: Rasterizer{AntiAlias: o.antiAlias},
	}
}

// Render is a convenience wrapper that runs a single pass with a temporary
// Renderer.
func Render(root *Node, fb *FrameBuffer, opts ...Option) error {
	r := NewRenderer(opts...)
	defer r.Close()
	return r.Render(root, fb)
}

// AntiAlias reports whether the renderer produces fractional coverage.
func (r *Renderer) AntiAlias() bool {
	return r.opts.antiAlias
}

// Render draws the tree rooted at root into fb. A nil root draws nothing
// (the buffer is still cleared if a background is configured).
//
// It returns ErrBufferMismatch, before touching the tree or the buffer, if
// fb is nil or has a zero dimension. Geometry outside the buffer is clipped
// silently.
func (r *Renderer) Render(root *Node, fb *FrameBuffer) error {
	if fb == nil {
		return fmt.Errorf("%w: nil buffer", ErrBufferMismatch)
	}
	if fb.Empty() {
		return fmt.Errorf("%w: %dx%d", ErrBufferMismatch, fb.Width(), fb.Height())
	}

	bands := []parallel.Band{{Y0: 0, Y1: fb.Height()}}
	if r.opts.workers > 1 {
		bands = parallel.Bands(fb.Height(), r.opts.workers)
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		nodes := 0
		if root != nil {
			nodes = root.Count()
		}
		l.Debug("pixl: render pass",
			"width", fb.Width(),
			"height", fb.Height(),
			"nodes", nodes,
			"bands", len(bands),
			"antialias", r.opts.antiAlias)
	}

	if len(bands) == 1 {
		r.renderBand(root, fb, bands[0])
	} else {
		work := make([]func(), len(bands))
		for i, b := range bands {
			work[i] = func() { r.renderBand(root, fb, b) }
		}
		if p := r.workerPool(); p != nil {
			p.ExecuteAll(work)
		} else {
			for _, fn := range work {
				fn()
			}
		}
	}

	if r.opts.clear {
		fb.clear = r.opts.background
	}
	return nil
}

// renderBand draws the rows of one band. It writes no pixel outside the
// band, which is what lets bands run concurrently.
func (r *Renderer) renderBand(root *Node, fb *FrameBuffer, b parallel.Band) {
	if r.opts.clear {
		fb.clearRows(b.Y0, b.Y1, r.opts.background)
	}
	if root == nil {
		return
	}
	clip := image.Rect(0, b.Y0, fb.Width(), b.Y1)
	root.Walk(func(n *Node, world Matrix) bool {
		if n.shape != nil {
			r.raster.Draw(fb, n.shape, n.style, world, clip)
		}
		return true
	})
}

// workerPool returns the renderer's pool, starting it on first use. It
// returns nil once the renderer is closed.
func (r *Renderer) workerPool() *parallel.WorkerPool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	if r.pool == nil {
		r.pool = parallel.NewWorkerPool(r.opts.workers)
	}
	return r.pool
}

// Close stops any worker goroutines. The renderer remains usable; later
// multi-band passes run their bands on the calling goroutine.
func (r *Renderer) Close() {
	r.mu.Lock()
	p := r.pool
	r.closed = true
	r.mu.Unlock()
	if p != nil {
		p.Close()
	}
}
