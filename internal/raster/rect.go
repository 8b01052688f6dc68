package raster

import "image"

// FillRect reports coverage of the local box b transformed by m.
func FillRect(b Box, m Affine, clip image.Rectangle, aa bool, emit CoverageFunc) {
	if b.Empty() || clip.Empty() {
		return
	}
	if m.AxisAligned() {
		fillAlignedRect(m.Bounds(b), clip, aa, emit)
		return
	}
	fillTransformedRect(b, Box{}, false, m, clip, aa, emit)
}

// StrokeRect reports coverage of a stroke of the given width centered on the
// outline of the local box b.
func StrokeRect(b Box, width float64, m Affine, clip image.Rectangle, aa bool, emit CoverageFunc) {
	if b.Empty() || !(width > 0) || clip.Empty() {
		return
	}
	hw := width / 2
	outer := b.Inset(-hw)
	inner := b.Inset(hw)
	hasInner := !inner.Empty()

	if !m.AxisAligned() {
		fillTransformedRect(outer, inner, hasInner, m, clip, aa, emit)
		return
	}

	devOuter := m.Bounds(outer)
	if !hasInner {
		fillAlignedRect(devOuter, clip, aa, emit)
		return
	}
	devInner := m.Bounds(inner)

	if !aa {
		x0, x1 := Span(devOuter.MinX, devOuter.MaxX, clip.Min.X, clip.Max.X)
		y0, y1 := Span(devOuter.MinY, devOuter.MaxY, clip.Min.Y, clip.Max.Y)
		walk(image.Rect(x0, y0, x1, y1), emit, func(x, y int) float64 {
			if devInner.Contains(center(x, y)) {
				return 0
			}
			return 1
		})
		return
	}

	walk(candidates(devOuter, 0, clip), emit, func(x, y int) float64 {
		return area(devOuter, x, y) - area(devInner, x, y)
	})
}

// fillAlignedRect fills a device-space box.
func fillAlignedRect(dev Box, clip image.Rectangle, aa bool, emit CoverageFunc) {
	if dev.Empty() {
		return
	}
	if !aa {
		x0, x1 := Span(dev.MinX, dev.MaxX, clip.Min.X, clip.Max.X)
		y0, y1 := Span(dev.MinY, dev.MaxY, clip.Min.Y, clip.Max.Y)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				emit(x, y, 1)
			}
		}
		return
	}
	walk(candidates(dev, 0, clip), emit, func(x, y int) float64 {
		return area(dev, x, y)
	})
}

// area returns the exact fraction of pixel (x, y) covered by dev.
func area(dev Box, x, y int) float64 {
	return Overlap(x, dev.MinX, dev.MaxX) * Overlap(y, dev.MinY, dev.MaxY)
}

// fillTransformedRect handles rotated or sheared boxes by mapping pixel
// samples back into local space. When hasHole is set, points inside hole
// are excluded.
func fillTransformedRect(b, hole Box, hasHole bool, m Affine, clip image.Rectangle, aa bool, emit CoverageFunc) {
	inv, ok := m.Inverse()
	if !ok {
		return
	}
	inside := func(lx, ly float64) bool {
		return b.Contains(lx, ly) && !(hasHole && hole.Contains(lx, ly))
	}
	r := candidates(m.Bounds(b), 1, clip)
	if !aa {
		walk(r, emit, func(x, y int) float64 {
			if inside(inv.Apply(center(x, y))) {
				return 1
			}
			return 0
		})
		return
	}
	walk(r, emit, func(x, y int) float64 {
		return sampled(x, y, inv, inside)
	})
}
