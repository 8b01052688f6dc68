package raster

import (
	"image"
	"math"
)

// Bresenham calls plot for every pixel on the integer line from (x0, y0) to
// (x1, y1), both endpoints included, in order from the start point.
func Bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeLine reports coverage of the segment ab stroked with the given
// local width. Thin aliased lines use Bresenham between the device pixels
// holding the endpoints; everything else is treated as a capsule.
// Zero-length segments and non-positive widths cover nothing.
func StrokeLine(a, b Point, width float64, m Affine, clip image.Rectangle, aa bool, emit CoverageFunc) {
	if !(width > 0) || clip.Empty() || (a.X == b.X && a.Y == b.Y) {
		return
	}
	ax, ay := m.Apply(a.X, a.Y)
	bx, by := m.Apply(b.X, b.Y)
	if ax == bx && ay == by {
		return
	}
	da, db := Point{ax, ay}, Point{bx, by}
	hw := width * m.MeanScale() / 2
	if !(hw > 0) {
		return
	}

	if !aa && hw <= 0.5 {
		strokeHairline(da, db, clip, emit)
		return
	}

	box := Box{
		MinX: math.Min(ax, bx), MinY: math.Min(ay, by),
		MaxX: math.Max(ax, bx), MaxY: math.Max(ay, by),
	}
	r := candidates(box, hw+1, clip)
	if !aa {
		walk(r, emit, func(x, y int) float64 {
			px, py := center(x, y)
			if SegmentDistance(Point{px, py}, da, db) <= hw {
				return 1
			}
			return 0
		})
		return
	}
	walk(r, emit, func(x, y int) float64 {
		px, py := center(x, y)
		return EdgeCoverage(SegmentDistance(Point{px, py}, da, db) - hw)
	})
}

// hairlineGuard bounds the device coordinates a hairline walk may start or
// end at. It is independent of the clip so every row band traces the same
// pixel path.
const hairlineGuard = 1 << 22

func strokeHairline(a, b Point, clip image.Rectangle, emit CoverageFunc) {
	guard := image.Rect(-hairlineGuard, -hairlineGuard, hairlineGuard, hairlineGuard)
	a, b, ok := clipSegment(a, b, guard)
	if !ok {
		return
	}
	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	Bresenham(x0, y0, x1, y1, func(x, y int) {
		if image.Pt(x, y).In(clip) {
			emit(x, y, 1)
		}
	})
}

// clipSegment clips ab to r using Liang-Barsky. It reports false when
// nothing remains.
func clipSegment(a, b Point, r image.Rectangle) (Point, Point, bool) {
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X), float64(r.Max.Y)
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	na := Point{a.X + t0*dx, a.Y + t0*dy}
	nb := Point{a.X + t1*dx, a.Y + t1*dy}
	return na, nb, true
}

// FillPixel reports the single device pixel containing the transformed
// point p.
func FillPixel(p Point, m Affine, clip image.Rectangle, emit CoverageFunc) {
	x, y := m.Apply(p.X, p.Y)
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	fx, fy := math.Floor(x), math.Floor(y)
	if fx < float64(clip.Min.X) || fx >= float64(clip.Max.X) ||
		fy < float64(clip.Min.Y) || fy >= float64(clip.Max.Y) {
		return
	}
	emit(int(fx), int(fy), 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
