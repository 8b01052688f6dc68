package raster

import (
	"image"
	"math"
)

// FillCircle reports coverage of the disc (c, r) in local space transformed
// by m. Non-uniform transforms produce ellipses; the anti-aliased band is
// measured with m's mean scale.
func FillCircle(c Point, r float64, m Affine, clip image.Rectangle, aa bool, emit CoverageFunc) {
	if !(r > 0) || clip.Empty() {
		return
	}
	inv, ok := m.Inverse()
	if !ok {
		return
	}
	box := Box{MinX: c.X - r, MinY: c.Y - r, MaxX: c.X + r, MaxY: c.Y + r}

	if !aa {
		r2 := r * r
		walk(candidates(m.Bounds(box), 0.5, clip), emit, func(x, y int) float64 {
			lx, ly := inv.Apply(center(x, y))
			dx, dy := lx-c.X, ly-c.Y
			if dx*dx+dy*dy <= r2 {
				return 1
			}
			return 0
		})
		return
	}

	scale := m.MeanScale()
	walk(candidates(m.Bounds(box), 1, clip), emit, func(x, y int) float64 {
		lx, ly := inv.Apply(center(x, y))
		dist := math.Hypot(lx-c.X, ly-c.Y)
		return EdgeCoverage((dist - r) * scale)
	})
}

// StrokeCircle reports coverage of a ring of the given width centered on the
// circle (c, r).
func StrokeCircle(c Point, r, width float64, m Affine, clip image.Rectangle, aa bool, emit CoverageFunc) {
	if !(r > 0) || !(width > 0) || clip.Empty() {
		return
	}
	inv, ok := m.Inverse()
	if !ok {
		return
	}
	hw := width / 2
	outer := r + hw
	box := Box{MinX: c.X - outer, MinY: c.Y - outer, MaxX: c.X + outer, MaxY: c.Y + outer}

	if !aa {
		walk(candidates(m.Bounds(box), 0.5, clip), emit, func(x, y int) float64 {
			lx, ly := inv.Apply(center(x, y))
			if math.Abs(math.Hypot(lx-c.X, ly-c.Y)-r) <= hw {
				return 1
			}
			return 0
		})
		return
	}

	scale := m.MeanScale()
	walk(candidates(m.Bounds(box), 1, clip), emit, func(x, y int) float64 {
		lx, ly := inv.Apply(center(x, y))
		dist := math.Hypot(lx-c.X, ly-c.Y)
		return EdgeCoverage((math.Abs(dist-r) - hw) * scale)
	})
}
