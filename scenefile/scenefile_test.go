package scenefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixl"
)

const sampleYAML = `
width: 100
height: 80
background: "#000000"
antialias: false
workers: 2
root:
  type: group
  name: scene
  children:
    - type: rectangle
      name: box
      x: 10
      y: 10
      width: 20
      height: 20
      fill: "#ffffff"
    - type: circle
      x: 60
      y: 40
      radius: 10
      fill: "#ff0000"
      stroke: "#00ff00"
      stroke_width: 2
    - type: group
      transform:
        translate: [5, 5]
        rotate: 90
        scale: [2]
      children:
        - type: line
          x: 0
          y: 0
          x2: 10
          y2: 0
          stroke: "#0000ff"
        - type: pixel
          x: 1
          y: 1
          fill: "#ffffff"
          visible: false
`

const sampleTOML = `
width = 100
height = 80
background = "#000000"
workers = 2

[root]
type = "group"
name = "scene"

[[root.children]]
type = "rectangle"
name = "box"
x = 10.0
y = 10.0
width = 20.0
height = 20.0
fill = "#ffffff"

[[root.children]]
type = "circle"
x = 60.0
y = 40.0
radius = 10.0
fill = "#ff0000"
stroke = "#00ff00"
stroke_width = 2.0
`

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"scene.yaml", FormatYAML, false},
		{"dir/Scene.YML", FormatYAML, false},
		{"scene.toml", FormatTOML, false},
		{"scene.json", 0, true},
		{"scene", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "toml", FormatTOML.String())
}

func TestDecodeYAML(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, 100, s.Width)
	assert.Equal(t, 80, s.Height)
	assert.True(t, s.HasBackground)
	assert.Equal(t, pixl.Black, s.Background)
	assert.Equal(t, 2, s.Workers)
	assert.Len(t, s.Options(), 3)

	require.NotNil(t, s.Root)
	assert.Equal(t, "scene", s.Root.Name())
	assert.Equal(t, 6, s.Root.Count())

	kids := s.Root.Children()
	require.Len(t, kids, 3)

	box := kids[0]
	assert.Equal(t, pixl.KindRectangle, box.Kind())
	assert.Equal(t, "box", box.Name())
	assert.Equal(t, pixl.Pt(10, 10), box.Position())
	assert.Equal(t, pixl.White, box.Style().Fill)

	circle := kids[1]
	assert.Equal(t, pixl.KindCircle, circle.Kind())
	assert.Equal(t, pixl.Green, circle.Style().Stroke)
	assert.Equal(t, 2.0, circle.Style().StrokeWidth)

	group := kids[2]
	p := group.Transform().TransformPoint(pixl.Pt(1, 0))
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 7, p.Y, 1e-9)

	inner := group.Children()
	require.Len(t, inner, 2)
	assert.Equal(t, pixl.KindLine, inner[0].Kind())
	assert.Equal(t, pixl.Blue, inner[0].Style().Stroke)
	assert.Equal(t, 1.0, inner[0].Style().StrokeWidth)
	assert.False(t, inner[1].Visible())
}

func TestDecodeTOML(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, 100, s.Width)
	assert.Equal(t, 80, s.Height)
	assert.False(t, s.AntiAlias)

	kids := s.Root.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, pixl.KindRectangle, kids[0].Kind())
	assert.Equal(t, pixl.Size{W: 20, H: 20}, kids[0].Size())
	assert.Equal(t, pixl.KindCircle, kids[1].Kind())
}

func TestYAMLAndTOMLRenderAlike(t *testing.T) {
	y, err := Decode(strings.NewReader(sampleYAML), FormatYAML)
	require.NoError(t, err)
	tm, err := Decode(strings.NewReader(sampleTOML), FormatTOML)
	require.NoError(t, err)

	// Drop the extra YAML group so both trees match.
	y.Root.Children()[2].Detach()

	a, err := y.Render()
	require.NoError(t, err)
	b, err := tm.Render()
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "YAML and TOML scenes rendered differently")

	assert.Equal(t, pixl.White, a.GetPixel(10, 10))
	assert.Equal(t, pixl.White, a.GetPixel(29, 29))
	assert.Equal(t, pixl.Black, a.GetPixel(30, 30))
	assert.Equal(t, pixl.Red, a.GetPixel(60, 40))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		target error
	}{
		{"unknown type", "root:\n  type: hexagon\n", ErrUnknownNodeType},
		{"bad fill", "root:\n  type: rectangle\n  fill: red\n", ErrInvalidColor},
		{"bad background", "background: '#12'\nroot: {}\n", ErrInvalidColor},
		{"negative size", "width: -1\nroot: {}\n", ErrInvalidScene},
		{"negative workers", "workers: -2\nroot: {}\n", ErrInvalidScene},
		{"negative width", "root:\n  type: rectangle\n  width: -5\n  height: 1\n", pixl.ErrInvalidGeometry},
		{"negative radius", "root:\n  type: circle\n  radius: -1\n", pixl.ErrInvalidGeometry},
		{"bad translate", "root:\n  transform:\n    translate: [1]\n", ErrInvalidScene},
		{"bad scale", "root:\n  transform:\n    scale: [1, 2, 3]\n", ErrInvalidScene},
		{"group position twice", "root:\n  x: 5\n  transform:\n    translate: [1, 2]\n", ErrInvalidScene},
		{
			"nested error",
			"root:\n  children:\n    - type: circle\n      radius: 2\n    - type: blob\n",
			ErrUnknownNodeType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), FormatYAML)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestDecodeErrorNamesNode(t *testing.T) {
	doc := "root:\n  children:\n    - type: circle\n      radius: 2\n    - type: blob\n"
	_, err := Decode(strings.NewReader(doc), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root.children[1]")
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("root:\n  type: group\n  colour: red\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("[root]\ntype = \"group\"\ncolour = \"red\"\n"), FormatTOML)
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	s, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	require.NotNil(t, s.Root)
	assert.Equal(t, pixl.KindGroup, s.Root.Kind())
	assert.False(t, s.HasBackground)

	_, err = s.Render()
	assert.ErrorIs(t, err, pixl.ErrBufferMismatch, "zero-size scene must not render")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, s.Width)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "scene.txt"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[root]\ntype = \"blob\"\n"), 0o600))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrUnknownNodeType)
	assert.Contains(t, err.Error(), bad)
}

func TestTransformSpecMatrix(t *testing.T) {
	var nilSpec *TransformSpec
	m, err := nilSpec.Matrix()
	require.NoError(t, err)
	assert.True(t, m.IsIdentity())

	m, err = (&TransformSpec{Translate: []float64{3, 4}, Scale: []float64{2, 3}}).Matrix()
	require.NoError(t, err)
	p := m.TransformPoint(pixl.Pt(1, 1))
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 7, p.Y, 1e-9)
}

func TestDecodeGroupPosition(t *testing.T) {
	doc := `
width: 100
height: 100
background: "#000000"
root:
  type: group
  x: 40
  y: 30
  transform:
    scale: [2]
  children:
    - type: rectangle
      x: 0
      y: 0
      width: 5
      height: 5
      fill: "#ffffff"
`
	s, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, pixl.Pt(40, 30), s.Root.Position())

	p := s.Root.Transform().TransformPoint(pixl.Pt(1, 1))
	assert.InDelta(t, 42, p.X, 1e-9)
	assert.InDelta(t, 32, p.Y, 1e-9)

	fb, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, pixl.White, fb.GetPixel(40, 30))
	assert.Equal(t, pixl.White, fb.GetPixel(49, 39))
	assert.Equal(t, pixl.Black, fb.GetPixel(39, 30))
	assert.Equal(t, pixl.Black, fb.GetPixel(50, 39))
}
