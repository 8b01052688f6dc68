package pixl

import (
	"fmt"
	"image"

	"github.com/gogpu/pixl/internal/raster"
)

// CoverageFunc receives one covered device pixel and its coverage in (0, 1].
type CoverageFunc = raster.CoverageFunc

// Style is the paint applied to a node's shape.
//
// Fill paints the interior of rectangles, circles and pixels. Stroke paints
// a band of StrokeWidth centered on the outline; for lines it is the only
// paint. A fully transparent color or a zero width disables that part.
type Style struct {
	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64
}

// FillStyle returns a style that only fills.
func FillStyle(c RGBA) Style {
	return Style{Fill: c}
}

// StrokeStyle returns a style that only strokes.
func StrokeStyle(c RGBA, width float64) Style {
	return Style{Stroke: c, StrokeWidth: width}
}

// Rasterizer converts shapes into pixel coverage. It holds configuration
// only, so the zero value is a ready aliased rasterizer and copies are safe
// to use from several goroutines.
type Rasterizer struct {
	// AntiAlias enables fractional edge coverage.
	AntiAlias bool
}

// Fill reports the interior coverage of s under transform m, limited to
// clip. Lines have no interior and report nothing.
func (r Rasterizer) Fill(s Shape, m Matrix, clip image.Rectangle, emit CoverageFunc) {
	am := toAffine(m)
	switch s := s.(type) {
	case Rectangle:
		raster.FillRect(toBox(s.Bounds()), am, clip, r.AntiAlias, emit)
	case Circle:
		raster.FillCircle(toPoint(s.Center), s.Radius, am, clip, r.AntiAlias, emit)
	case Pixel:
		raster.FillPixel(toPoint(s.Pos), am, clip, emit)
	case Line:
	case nil:
	default:
		panic(fmt.Sprintf("pixl: unknown shape %T", s))
	}
}

// Stroke reports the coverage of a stroke of the given local width along
// the outline of s. Pixels have no outline and report nothing.
func (r Rasterizer) Stroke(s Shape, width float64, m Matrix, clip image.Rectangle, emit CoverageFunc) {
	am := toAffine(m)
	switch s := s.(type) {
	case Rectangle:
		raster.StrokeRect(toBox(s.Bounds()), width, am, clip, r.AntiAlias, emit)
	case Circle:
		raster.StrokeCircle(toPoint(s.Center), s.Radius, width, am, clip, r.AntiAlias, emit)
	case Line:
		raster.StrokeLine(toPoint(s.From), toPoint(s.To), width, am, clip, r.AntiAlias, emit)
	case Pixel:
	case nil:
	default:
		panic(fmt.Sprintf("pixl: unknown shape %T", s))
	}
}

// Draw fills then strokes s into fb, blending each covered pixel with the
// style color scaled by its coverage. Drawing is limited to clip and the
// buffer bounds.
func (r Rasterizer) Draw(fb *FrameBuffer, s Shape, st Style, m Matrix, clip image.Rectangle) {
	if fb == nil || s == nil {
		return
	}
	clip = clip.Intersect(fb.Bounds())
	if clip.Empty() {
		return
	}
	if st.Fill.A > 0 {
		c := st.Fill
		r.Fill(s, m, clip, func(x, y int, cov float64) {
			fb.BlendPixel(x, y, c.WithAlpha(cov))
		})
	}
	if st.Stroke.A > 0 && st.StrokeWidth > 0 {
		c := st.Stroke
		r.Stroke(s, st.StrokeWidth, m, clip, func(x, y int, cov float64) {
			fb.BlendPixel(x, y, c.WithAlpha(cov))
		})
	}
}

// CountCoverage returns the number of pixels of s covered by a fill inside
// clip. It is mainly useful for tests and diagnostics.
func (r Rasterizer) CountCoverage(s Shape, m Matrix, clip image.Rectangle) int {
	n := 0
	r.Fill(s, m, clip, func(int, int, float64) { n++ })
	return n
}

func toAffine(m Matrix) raster.Affine {
	return raster.Affine{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

func toBox(r Rect) raster.Box {
	return raster.Box{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}

func toPoint(p Point) raster.Point {
	return raster.Point{X: p.X, Y: p.Y}
}
