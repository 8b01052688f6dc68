// Package scenefile loads pixl scenes from YAML or TOML descriptions.
//
// A scene file carries the render configuration and a node tree:
//
//	width: 200
//	height: 120
//	background: "#000000"
//	antialias: true
//	root:
//	  type: group
//	  children:
//	    - type: rectangle
//	      x: 10
//	      y: 10
//	      width: 50
//	      height: 30
//	      fill: "#ff0000"
//	    - type: circle
//	      x: 120
//	      y: 60
//	      radius: 25
//	      fill: "#0080ff80"
//	      stroke: "#ffffff"
//	      stroke_width: 2
//
// The format is chosen from the file extension (.yaml, .yml or .toml).
// Unknown keys are rejected so typos surface as errors.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/pixl"
)

var (
	// ErrUnknownFormat is returned for file extensions other than .yaml,
	// .yml and .toml.
	ErrUnknownFormat = errors.New("scenefile: unknown format")

	// ErrUnknownNodeType is returned for a node whose type is not one of
	// group, rectangle, circle, line or pixel.
	ErrUnknownNodeType = errors.New("scenefile: unknown node type")

	// ErrInvalidColor is returned for a color that is not a hex string.
	ErrInvalidColor = errors.New("scenefile: invalid color")

	// ErrInvalidScene is returned for scene-level values out of range.
	ErrInvalidScene = errors.New("scenefile: invalid scene")
)

// Format is a scene file encoding.
type Format int

// Supported formats.
const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Scene is a decoded scene file.
type Scene struct {
	Width, Height int

	// Background is the clear color. It only applies when HasBackground is
	// set; otherwise the pass draws over the buffer as-is.
	Background    pixl.RGBA
	HasBackground bool

	AntiAlias bool
	Workers   int

	// Root is the top of the node tree. It is never nil.
	Root *pixl.Node
}

// Options returns the render options described by the scene.
func (s *Scene) Options() []pixl.Option {
	opts := []pixl.Option{pixl.WithAntiAlias(s.AntiAlias)}
	if s.HasBackground {
		opts = append(opts, pixl.WithBackground(s.Background))
	}
	if s.Workers > 1 {
		opts = append(opts, pixl.WithWorkers(s.Workers))
	}
	return opts
}

// NewFrameBuffer allocates a buffer of the scene's size.
func (s *Scene) NewFrameBuffer() *pixl.FrameBuffer {
	return pixl.NewFrameBuffer(s.Width, s.Height)
}

// Render draws the scene into a new buffer of the scene's size.
func (s *Scene) Render() (*pixl.FrameBuffer, error) {
	fb := s.NewFrameBuffer()
	if err := pixl.Render(s.Root, fb, s.Options()...); err != nil {
		return nil, err
	}
	return fb, nil
}

// file is the on-disk document.
type file struct {
	Width      int      `yaml:"width" toml:"width"`
	Height     int      `yaml:"height" toml:"height"`
	Background string   `yaml:"background" toml:"background"`
	AntiAlias  bool     `yaml:"antialias" toml:"antialias"`
	Workers    int      `yaml:"workers" toml:"workers"`
	Root       NodeSpec `yaml:"root" toml:"root"`
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	s, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scene in the given format.
func Decode(r io.Reader, f Format) (*Scene, error) {
	var doc file
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenefile: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r).DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("scenefile: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return doc.scene()
}

func (d *file) scene() (*Scene, error) {
	if d.Width < 0 || d.Height < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidScene, d.Width, d.Height)
	}
	if d.Workers < 0 {
		return nil, fmt.Errorf("%w: workers %d", ErrInvalidScene, d.Workers)
	}

	s := &Scene{
		Width:     d.Width,
		Height:    d.Height,
		AntiAlias: d.AntiAlias,
		Workers:   d.Workers,
	}
	if d.Background != "" {
		c, err := parseColor("background", d.Background)
		if err != nil {
			return nil, err
		}
		s.Background, s.HasBackground = c, true
	}

	root, err := d.Root.build("root")
	if err != nil {
		return nil, err
	}
	s.Root = root

	pixl.Logger().Debug("scenefile: decoded scene",
		"width", s.Width,
		"height", s.Height,
		"nodes", root.Count())
	return s, nil
}

func parseColor(field, v string) (pixl.RGBA, error) {
	c, err := pixl.ParseHex(v)
	if err != nil {
		return pixl.RGBA{}, fmt.Errorf("%w: %s %q", ErrInvalidColor, field, v)
	}
	return c, nil
}
