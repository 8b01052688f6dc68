package pixl

import (
	"fmt"
	"slices"
)

// Node is an element of the scene graph.
//
// A node pairs an optional Shape (nil makes it a group) with a Style, a local
// transform relative to its parent, and an ordered list of children it owns
// exclusively. Children are painted after their parent and in stored order,
// so later children cover earlier ones.
//
// Nodes are not safe for concurrent mutation. A render pass only reads the
// tree, so several passes may share an unchanged tree.
type Node struct {
	name      string
	shape     Shape
	style     Style
	transform Matrix
	hidden    bool

	parent   *Node
	children []*Node
}

func newNode(s Shape, st Style) *Node {
	return &Node{shape: s, style: st, transform: Identity()}
}

// NewGroupNode creates a node without a shape. Groups position and
// transform their children.
func NewGroupNode() *Node {
	return newNode(nil, Style{})
}

// NewRectangleNode creates a filled rectangle with its top-left corner at
// (x, y).
func NewRectangleNode(x, y, width, height float64, fill RGBA) (*Node, error) {
	r, err := NewRectangle(x, y, width, height)
	if err != nil {
		return nil, err
	}
	return newNode(r, FillStyle(fill)), nil
}

// NewCircleNode creates a filled circle centered on (cx, cy).
func NewCircleNode(cx, cy, radius float64, fill RGBA) (*Node, error) {
	c, err := NewCircle(cx, cy, radius)
	if err != nil {
		return nil, err
	}
	return newNode(c, FillStyle(fill)), nil
}

// NewLineNode creates a one unit wide line from (x1, y1) to (x2, y2).
func NewLineNode(x1, y1, x2, y2 float64, color RGBA) (*Node, error) {
	l, err := NewLine(x1, y1, x2, y2)
	if err != nil {
		return nil, err
	}
	return newNode(l, StrokeStyle(color, 1)), nil
}

// NewPixelNode creates a node covering the single pixel containing (x, y).
func NewPixelNode(x, y float64, color RGBA) (*Node, error) {
	p, err := NewPixel(x, y)
	if err != nil {
		return nil, err
	}
	return newNode(p, FillStyle(color)), nil
}

// NewShapeNode creates a node for an already validated shape.
func NewShapeNode(s Shape, st Style) (*Node, error) {
	if st.StrokeWidth < 0 || !isFinite(st.StrokeWidth) {
		return nil, fmt.Errorf("%w: stroke width %v", ErrInvalidGeometry, st.StrokeWidth)
	}
	return newNode(s, st), nil
}

// Kind returns the node's shape kind, KindGroup for groups.
func (n *Node) Kind() Kind {
	if n.shape == nil {
		return KindGroup
	}
	return n.shape.Kind()
}

// Shape returns the node's shape, nil for groups.
func (n *Node) Shape() Shape { return n.shape }

// Style returns the node's paint.
func (n *Node) Style() Style { return n.style }

// Name returns the optional node name.
func (n *Node) Name() string { return n.name }

// SetName sets the node name. Names are informational and need not be
// unique.
func (n *Node) SetName(name string) { n.name = name }

// Transform returns the local transform.
func (n *Node) Transform() Matrix { return n.transform }

// SetTransform replaces the local transform.
func (n *Node) SetTransform(m Matrix) { n.transform = m }

// Visible reports whether the node and its subtree are drawn.
func (n *Node) Visible() bool { return !n.hidden }

// SetVisible shows or hides the node together with its subtree.
func (n *Node) SetVisible(v bool) { n.hidden = !v }

// SetFill sets the fill color.
func (n *Node) SetFill(c RGBA) { n.style.Fill = c }

// SetStroke sets the stroke color and width.
func (n *Node) SetStroke(c RGBA, width float64) error {
	if width < 0 || !isFinite(width) {
		return fmt.Errorf("%w: stroke width %v", ErrInvalidGeometry, width)
	}
	n.style.Stroke = c
	n.style.StrokeWidth = width
	return nil
}

// Position returns the node's anchor: the top-left corner of a rectangle,
// the center of a circle, the start of a line, the point of a pixel, or the
// translation of a group.
func (n *Node) Position() Point {
	if n.shape == nil {
		return n.transform.Translation()
	}
	return n.shape.Anchor()
}

// SetPosition moves the node's anchor to (x, y). A line moves as a whole.
func (n *Node) SetPosition(x, y float64) error {
	if err := checkCoord("x", x); err != nil {
		return err
	}
	if err := checkCoord("y", y); err != nil {
		return err
	}
	p := Pt(x, y)
	switch s := n.shape.(type) {
	case nil:
		n.transform.C, n.transform.F = x, y
	case Rectangle:
		s.Pos = p
		n.shape = s
	case Circle:
		s.Center = p
		n.shape = s
	case Line:
		d := p.Sub(s.From)
		s.From, s.To = p, s.To.Add(d)
		n.shape = s
	case Pixel:
		s.Pos = p
		n.shape = s
	}
	return nil
}

// X returns the anchor's X coordinate.
func (n *Node) X() float64 { return n.Position().X }

// Y returns the anchor's Y coordinate.
func (n *Node) Y() float64 { return n.Position().Y }

// SetX moves the anchor horizontally.
func (n *Node) SetX(x float64) error { return n.SetPosition(x, n.Y()) }

// SetY moves the anchor vertically.
func (n *Node) SetY(y float64) error { return n.SetPosition(n.X(), y) }

// Size returns the extent of the node's local bounds. A circle reports its
// diameter; groups and pixels report zero and one respectively.
func (n *Node) Size() Size {
	switch s := n.shape.(type) {
	case nil:
		return Size{}
	case Rectangle:
		return s.Size
	default:
		b := s.Bounds()
		return Size{W: b.Width(), H: b.Height()}
	}
}

// SetSize changes the node's extent. Rectangles accept any non-negative
// size; circles require width == height and take radius width/2. Other
// kinds have no resizable extent and return ErrInvalidGeometry.
func (n *Node) SetSize(width, height float64) error {
	sz, err := NewSize(width, height)
	if err != nil {
		return err
	}
	switch s := n.shape.(type) {
	case Rectangle:
		s.Size = sz
		n.shape = s
		return nil
	case Circle:
		if sz.W != sz.H {
			return fmt.Errorf("%w: circle size %vx%v must be square", ErrInvalidGeometry, sz.W, sz.H)
		}
		s.Radius = sz.W / 2
		n.shape = s
		return nil
	default:
		return fmt.Errorf("%w: %s node has no resizable extent", ErrInvalidGeometry, n.Kind())
	}
}

// SetRadius sets a circle's radius.
func (n *Node) SetRadius(r float64) error {
	c, ok := n.shape.(Circle)
	if !ok {
		return fmt.Errorf("%w: %s node has no radius", ErrInvalidGeometry, n.Kind())
	}
	if err := checkExtent("radius", r); err != nil {
		return err
	}
	c.Radius = r
	n.shape = c
	return nil
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// AddChild appends c as the last (topmost) child. It fails with
// ErrNodeOwned if c already has a parent and with ErrNodeCycle if c is n
// or one of n's ancestors.
func (n *Node) AddChild(c *Node) error {
	if c == nil {
		return fmt.Errorf("pixl: nil child")
	}
	if c.parent != nil {
		return ErrNodeOwned
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return ErrNodeCycle
		}
	}
	c.parent = n
	n.children = append(n.children, c)
	return nil
}

// RemoveChild detaches c from n. It reports whether c was a child.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	return true
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Walk visits the visible subtree rooted at n in pre-order: a node before
// its children, children in stored order. world is the node's accumulated
// transform. Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, world Matrix) bool) {
	n.walk(Identity(), fn)
}

func (n *Node) walk(parent Matrix, fn func(*Node, Matrix) bool) {
	if n.hidden {
		return
	}
	world := parent.Multiply(n.transform)
	if !fn(n, world) {
		return
	}
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n, including
// hidden ones.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// HitTest returns the topmost visible node under root whose shape contains
// the device point p, or nil. Later siblings and children win over earlier
// ones, matching paint order. Lines are hit anywhere within their stroke.
func HitTest(root *Node, p Point) *Node {
	if root == nil {
		return nil
	}
	var hit *Node
	root.Walk(func(n *Node, world Matrix) bool {
		if n.shape == nil {
			return true
		}
		inv, ok := world.Inverse()
		if ok && n.contains(inv.TransformPoint(p)) {
			hit = n
		}
		return true
	})
	return hit
}

// contains tests a local point against the painted area. A line covers its
// stroke, so its tolerance grows with the stroke width.
func (n *Node) contains(p Point) bool {
	if l, ok := n.shape.(Line); ok {
		return l.within(p, max(0.5, n.style.StrokeWidth/2))
	}
	return n.shape.Contains(p)
}
