package raster

import (
	"image"
	"math"
)

// CoverageFunc receives one covered pixel and its coverage in (0, 1].
type CoverageFunc func(x, y int, coverage float64)

// Point is a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Box is an axis-aligned box in continuous coordinates.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return !(b.MaxX > b.MinX) || !(b.MaxY > b.MinY)
}

// Inset shrinks the box by d on every side.
func (b Box) Inset(d float64) Box {
	return Box{MinX: b.MinX + d, MinY: b.MinY + d, MaxX: b.MaxX - d, MaxY: b.MaxY - d}
}

// Contains applies the half-open rule.
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x < b.MaxX && y >= b.MinY && y < b.MaxY
}

// Affine is a 2x3 affine transform (internal copy to avoid import cycle).
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Apply transforms a point.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// AxisAligned reports whether m is scale plus translate only.
func (m Affine) AxisAligned() bool {
	return m.B == 0 && m.D == 0
}

// MeanScale returns sqrt(|det|).
func (m Affine) MeanScale() float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// Inverse returns the inverse transform, or false if m is singular.
func (m Affine) Inverse() (Affine, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// Bounds returns the device-space bounds of a local box.
func (m Affine) Bounds(b Box) Box {
	out := Box{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, c := range [4][2]float64{
		{b.MinX, b.MinY}, {b.MaxX, b.MinY},
		{b.MinX, b.MaxY}, {b.MaxX, b.MaxY},
	} {
		x, y := m.Apply(c[0], c[1])
		out.MinX = math.Min(out.MinX, x)
		out.MinY = math.Min(out.MinY, y)
		out.MaxX = math.Max(out.MaxX, x)
		out.MaxY = math.Max(out.MaxY, y)
	}
	return out
}

// candidates returns the pixel rectangle overlapping the device box grown by
// pad, clipped to clip.
func candidates(b Box, pad float64, clip image.Rectangle) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{
			X: clampIndex(math.Floor(b.MinX-pad), clip.Min.X, clip.Max.X),
			Y: clampIndex(math.Floor(b.MinY-pad), clip.Min.Y, clip.Max.Y),
		},
		Max: image.Point{
			X: clampIndex(math.Ceil(b.MaxX+pad), clip.Min.X, clip.Max.X),
			Y: clampIndex(math.Ceil(b.MaxY+pad), clip.Min.Y, clip.Max.Y),
		},
	}
}

// clampIndex clamps v to [lo, hi] before converting, so huge or infinite
// coordinates never overflow int.
func clampIndex(v float64, lo, hi int) int {
	if !(v > float64(lo)) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}
