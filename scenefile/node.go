package scenefile

import (
	"fmt"
	"math"

	"github.com/gogpu/pixl"
)

// NodeSpec describes one node and its subtree.
//
// Coordinates follow the node kind: X, Y is the top-left corner of a
// rectangle, the center of a circle, the start of a line (ending at X2, Y2)
// or the point of a pixel. For a group, X, Y is its translation, the same as
// Node.SetPosition. An empty Type means group.
type NodeSpec struct {
	Type string `yaml:"type" toml:"type"`
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`

	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" toml:"height,omitempty"`
	Radius float64 `yaml:"radius,omitempty" toml:"radius,omitempty"`
	X2     float64 `yaml:"x2,omitempty" toml:"x2,omitempty"`
	Y2     float64 `yaml:"y2,omitempty" toml:"y2,omitempty"`

	Fill        string  `yaml:"fill,omitempty" toml:"fill,omitempty"`
	Stroke      string  `yaml:"stroke,omitempty" toml:"stroke,omitempty"`
	StrokeWidth float64 `yaml:"stroke_width,omitempty" toml:"stroke_width,omitempty"`

	Transform *TransformSpec `yaml:"transform,omitempty" toml:"transform,omitempty"`
	Visible   *bool          `yaml:"visible,omitempty" toml:"visible,omitempty"`

	Children []NodeSpec `yaml:"children,omitempty" toml:"children,omitempty"`
}

// TransformSpec is a local transform applied as translate, then rotate,
// then scale (the scale acts on the node first).
type TransformSpec struct {
	Translate []float64 `yaml:"translate,omitempty" toml:"translate,omitempty"`
	Rotate    float64   `yaml:"rotate,omitempty" toml:"rotate,omitempty"` // degrees
	Scale     []float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
}

// Matrix returns the transform as a pixl matrix. A one-element scale is
// uniform.
func (t *TransformSpec) Matrix() (pixl.Matrix, error) {
	m := pixl.Identity()
	if t == nil {
		return m, nil
	}
	switch len(t.Translate) {
	case 0:
	case 2:
		m = m.Multiply(pixl.Translate(t.Translate[0], t.Translate[1]))
	default:
		return m, fmt.Errorf("%w: translate needs 2 values, got %d", ErrInvalidScene, len(t.Translate))
	}
	if t.Rotate != 0 {
		m = m.Multiply(pixl.Rotate(t.Rotate * math.Pi / 180))
	}
	switch len(t.Scale) {
	case 0:
	case 1:
		m = m.Multiply(pixl.Scale(t.Scale[0], t.Scale[0]))
	case 2:
		m = m.Multiply(pixl.Scale(t.Scale[0], t.Scale[1]))
	default:
		return m, fmt.Errorf("%w: scale needs 1 or 2 values, got %d", ErrInvalidScene, len(t.Scale))
	}
	return m, nil
}

// build converts ns into a node tree. path names the node in error
// messages.
func (ns *NodeSpec) build(path string) (*pixl.Node, error) {
	n, err := ns.node()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := ns.Transform.Matrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !m.IsIdentity() {
		n.SetTransform(m)
	}
	if ns.isGroup() && (ns.X != 0 || ns.Y != 0) {
		if ns.Transform != nil && len(ns.Transform.Translate) > 0 {
			return nil, fmt.Errorf("%s: %w: group position given by both x/y and transform.translate", path, ErrInvalidScene)
		}
		if err := n.SetPosition(ns.X, ns.Y); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if ns.Visible != nil {
		n.SetVisible(*ns.Visible)
	}
	n.SetName(ns.Name)

	for i := range ns.Children {
		c, err := ns.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(c); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return n, nil
}

func (ns *NodeSpec) node() (*pixl.Node, error) {
	fill, err := ns.color("fill", ns.Fill)
	if err != nil {
		return nil, err
	}
	stroke, err := ns.color("stroke", ns.Stroke)
	if err != nil {
		return nil, err
	}

	if ns.isGroup() {
		return pixl.NewGroupNode(), nil
	}

	var n *pixl.Node
	switch ns.Type {
	case "rectangle", "rect":
		n, err = pixl.NewRectangleNode(ns.X, ns.Y, ns.Width, ns.Height, fill)
	case "circle":
		n, err = pixl.NewCircleNode(ns.X, ns.Y, ns.Radius, fill)
	case "pixel":
		n, err = pixl.NewPixelNode(ns.X, ns.Y, fill)
	case "line":
		// A line has no interior, so fill doubles as its color.
		c := stroke
		if ns.Stroke == "" {
			c = fill
		}
		n, err = pixl.NewLineNode(ns.X, ns.Y, ns.X2, ns.Y2, c)
		if err == nil && ns.StrokeWidth > 0 {
			err = n.SetStroke(c, ns.StrokeWidth)
		}
		return n, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, ns.Type)
	}
	if err != nil {
		return nil, err
	}

	if ns.Stroke != "" {
		w := ns.StrokeWidth
		if w == 0 {
			w = 1
		}
		if err := n.SetStroke(stroke, w); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (ns *NodeSpec) isGroup() bool {
	return ns.Type == "" || ns.Type == "group"
}

func (ns *NodeSpec) color(field, v string) (pixl.RGBA, error) {
	if v == "" {
		return pixl.Transparent, nil
	}
	return parseColor(field, v)
}
