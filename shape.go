package pixl

import (
	"fmt"
	"math"

	"github.com/gogpu/pixl/internal/raster"
)

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyRect returns a rect that contains nothing and absorbs any union.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return !(r.MaxX > r.MinX) || !(r.MaxY > r.MinY)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// UnionPoint grows r to include p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Inset shrinks the rect by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{MinX: r.MinX + d, MinY: r.MinY + d, MaxX: r.MaxX - d, MaxY: r.MaxY - d}
}

// Contains applies the half-open rule on both axes.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX &&
		p.Y >= r.MinY && p.Y < r.MaxY
}

// Kind identifies a shape variant.
type Kind uint8

// Shape kinds
const (
	KindGroup Kind = iota
	KindRectangle
	KindCircle
	KindLine
	KindPixel
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindPixel:
		return "pixel"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape is the closed set of primitives the rasterizer understands.
// Only types in this package implement it; adding a shape means adding a
// case to every switch over Shape in the rasterizer.
type Shape interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Bounds returns the local axis-aligned bounding box.
	Bounds() Rect

	// Contains reports whether the local point p is inside the shape.
	Contains(p Point) bool

	// Anchor returns the shape's position: the top-left corner of a
	// rectangle, the center of a circle, the start of a line.
	Anchor() Point

	isShape()
}

// Rectangle is an axis-aligned rectangle in its local space.
type Rectangle struct {
	Pos  Point // top-left corner
	Size Size
}

// NewRectangle validates and returns a rectangle.
func NewRectangle(x, y, w, h float64) (Rectangle, error) {
	if err := checkCoord("x", x); err != nil {
		return Rectangle{}, err
	}
	if err := checkCoord("y", y); err != nil {
		return Rectangle{}, err
	}
	sz, err := NewSize(w, h)
	if err != nil {
		return Rectangle{}, err
	}
	return Rectangle{Pos: Pt(x, y), Size: sz}, nil
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (Rectangle) isShape()   {}

// Anchor returns the top-left corner.
func (r Rectangle) Anchor() Point { return r.Pos }

// Bounds returns the rectangle itself.
func (r Rectangle) Bounds() Rect {
	return Rect{MinX: r.Pos.X, MinY: r.Pos.Y, MaxX: r.Pos.X + r.Size.W, MaxY: r.Pos.Y + r.Size.H}
}

// Contains uses the half-open rule, so adjacent rectangles never share a
// point.
func (r Rectangle) Contains(p Point) bool {
	return r.Bounds().Contains(p)
}

// Circle is a disc given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle validates and returns a circle.
func NewCircle(cx, cy, radius float64) (Circle, error) {
	if err := checkCoord("cx", cx); err != nil {
		return Circle{}, err
	}
	if err := checkCoord("cy", cy); err != nil {
		return Circle{}, err
	}
	if err := checkExtent("radius", radius); err != nil {
		return Circle{}, err
	}
	return Circle{Center: Pt(cx, cy), Radius: radius}, nil
}

func (Circle) Kind() Kind { return KindCircle }
func (Circle) isShape()   {}

// Anchor returns the center.
func (c Circle) Anchor() Point { return c.Center }

// Bounds returns the circle's bounding square.
func (c Circle) Bounds() Rect {
	return Rect{
		MinX: c.Center.X - c.Radius, MinY: c.Center.Y - c.Radius,
		MaxX: c.Center.X + c.Radius, MaxY: c.Center.Y + c.Radius,
	}
}

// Contains reports whether p is within the radius. A zero radius contains
// nothing.
func (c Circle) Contains(p Point) bool {
	if c.Radius <= 0 {
		return false
	}
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Line is a straight segment. Its thickness comes from the node's stroke
// width.
type Line struct {
	From, To Point
}

// NewLine validates and returns a line.
func NewLine(x1, y1, x2, y2 float64) (Line, error) {
	for i, v := range [4]float64{x1, y1, x2, y2} {
		if err := checkCoord([4]string{"x1", "y1", "x2", "y2"}[i], v); err != nil {
			return Line{}, err
		}
	}
	return Line{From: Pt(x1, y1), To: Pt(x2, y2)}, nil
}

func (Line) Kind() Kind { return KindLine }
func (Line) isShape()   {}

// Anchor returns the start point.
func (l Line) Anchor() Point { return l.From }

// Bounds returns the box spanned by the endpoints.
func (l Line) Bounds() Rect {
	return EmptyRect().UnionPoint(l.From).UnionPoint(l.To)
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.From.Distance(l.To)
}

// Contains reports whether p lies within half a unit of the segment.
// Zero-length lines contain nothing.
func (l Line) Contains(p Point) bool {
	return l.within(p, 0.5)
}

// within reports whether p lies at most tol from the segment.
func (l Line) within(p Point, tol float64) bool {
	if l.Length() == 0 {
		return false
	}
	return raster.SegmentDistance(toPoint(p), toPoint(l.From), toPoint(l.To)) <= tol
}

// Pixel is a single unit cell anchored at a point.
type Pixel struct {
	Pos Point
}

// NewPixel validates and returns a pixel.
func NewPixel(x, y float64) (Pixel, error) {
	if err := checkCoord("x", x); err != nil {
		return Pixel{}, err
	}
	if err := checkCoord("y", y); err != nil {
		return Pixel{}, err
	}
	return Pixel{Pos: Pt(x, y)}, nil
}

func (Pixel) Kind() Kind { return KindPixel }
func (Pixel) isShape()   {}

// Anchor returns the point.
func (p Pixel) Anchor() Point { return p.Pos }

// Bounds returns the unit cell containing the point.
func (p Pixel) Bounds() Rect {
	x, y := math.Floor(p.Pos.X), math.Floor(p.Pos.Y)
	return Rect{MinX: x, MinY: y, MaxX: x + 1, MaxY: y + 1}
}

// Contains reports whether q falls in the same unit cell.
func (p Pixel) Contains(q Point) bool {
	return p.Bounds().Contains(q)
}
