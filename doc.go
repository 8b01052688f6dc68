// Package pixl is a pure Go 2D software rasterizer built around a small
// retained scene graph.
//
// # Overview
//
// A scene is a tree of [Node] values. Each node carries an optional shape
// (rectangle, circle, line or single pixel), a fill and stroke [Style], a
// local affine [Matrix] and an ordered list of children it owns. A render
// pass walks the tree in pre-order, composes each node's local transform
// with its parent's, and rasterizes the shape into a [FrameBuffer].
//
// # Quick Start
//
//	fb := pixl.NewFrameBuffer(100, 100)
//
//	root := pixl.NewGroupNode()
//	rect, _ := pixl.NewRectangleNode(10, 10, 20, 20, pixl.White)
//	circle, _ := pixl.NewCircleNode(50, 50, 10, pixl.Red)
//	_ = root.AddChild(rect)
//	_ = root.AddChild(circle)
//
//	if err := pixl.Render(root, fb, pixl.WithBackground(pixl.Black)); err != nil {
//		log.Fatal(err)
//	}
//	_ = fb.SavePNG("out.png")
//
// # Coordinate System
//
// All positions and extents are float64 and are never rounded before
// rasterization. Coordinates may be negative or lie beyond the buffer;
// pixels outside the buffer are clipped silently.
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (i, j) is sampled at its center (i+0.5, j+0.5)
//
// # Coverage Rules
//
// Without anti-aliasing a pixel is either covered or not. Rectangles use the
// half-open rule (x >= left && x < right) so that shapes sharing an edge never
// cover the same pixel twice. Circles include pixels whose center is at most
// the radius away from the circle's center. With anti-aliasing enabled
// ([WithAntiAlias]) edge pixels receive fractional coverage and are blended
// with alpha-over compositing.
//
// # Determinism
//
// A render pass never mutates the tree. Rendering an unchanged tree into a
// freshly cleared buffer always yields byte-identical pixels, including when
// the pass is split across row bands with [WithWorkers].
package pixl

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
