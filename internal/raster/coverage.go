package raster

import (
	"image"
	"math"
)

// edgeHalfWidth is half the width of the anti-aliasing band in device
// pixels. The band spans one pixel, centered on the geometric edge.
const edgeHalfWidth = 0.5

// subsamples is the per-axis sample count used when a transform rotates or
// shears a rectangle and exact area coverage is not available.
const subsamples = 4

// Span returns the half-open range [start, end) of pixel indices whose
// centers i+0.5 satisfy lo <= i+0.5 < hi, limited to [min, max).
func Span(lo, hi float64, minIdx, maxIdx int) (start, end int) {
	start = clampIndex(math.Ceil(lo-0.5), minIdx, maxIdx)
	end = clampIndex(math.Ceil(hi-0.5), minIdx, maxIdx)
	if end < start {
		end = start
	}
	return start, end
}

// Overlap returns the length of [i, i+1) intersected with [lo, hi).
func Overlap(i int, lo, hi float64) float64 {
	a := math.Max(float64(i), lo)
	b := math.Min(float64(i+1), hi)
	if b <= a {
		return 0
	}
	return b - a
}

// EdgeCoverage converts a signed distance in device pixels (negative
// inside) to coverage using a Hermite smoothstep over a one-pixel band.
//
// sdf <= -0.5 => 1.0 (fully inside)
// sdf >= +0.5 => 0.0 (fully outside)
// Otherwise    => smooth transition, 0.5 on the edge itself
func EdgeCoverage(sdf float64) float64 {
	if sdf >= edgeHalfWidth {
		return 0
	}
	if sdf <= -edgeHalfWidth {
		return 1
	}
	t := (sdf + edgeHalfWidth) / (2 * edgeHalfWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}

// SegmentDistance returns the distance from p to the segment ab.
func SegmentDistance(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 == 0 {
		return math.Hypot(apx, apy)
	}
	t := (apx*abx + apy*aby) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(apx-t*abx, apy-t*aby)
}

// sampled reports the fraction of a subsamples x subsamples grid inside the
// pixel (x, y) for which inside returns true. Samples are mapped through inv
// into local space first.
func sampled(x, y int, inv Affine, inside func(lx, ly float64) bool) float64 {
	n := 0
	for sy := range subsamples {
		py := float64(y) + (float64(sy)+0.5)/subsamples
		for sx := range subsamples {
			px := float64(x) + (float64(sx)+0.5)/subsamples
			if inside(inv.Apply(px, py)) {
				n++
			}
		}
	}
	return float64(n) / (subsamples * subsamples)
}

// walk visits every pixel of r in row-major order and emits the coverage
// returned by cov when it is positive.
func walk(r image.Rectangle, emit CoverageFunc, cov func(x, y int) float64) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c := cov(x, y); c > 0 {
				emit(x, y, math.Min(c, 1))
			}
		}
	}
}

// center returns the sample position of pixel (x, y).
func center(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}
