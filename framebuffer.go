package pixl

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// FrameBuffer is a fixed-size grid of straight-alpha RGBA8 pixels.
//
// A render pass owns the buffer exclusively while it runs. Afterwards the
// pixels can be handed to a presentation layer through the read-only views
// Pix, ToImage, U32Buffer and Scaled.
type FrameBuffer struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
	clear  RGBA
}

// NewFrameBuffer creates a buffer with the given dimensions, cleared to
// Transparent. Negative dimensions are treated as zero; a zero-sized buffer
// is valid but a render pass rejects it with ErrBufferMismatch.
func NewFrameBuffer(width, height int) *FrameBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &FrameBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		clear:  Transparent,
	}
}

// Width returns the width of the buffer.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the height of the buffer.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Empty reports whether either dimension is zero.
func (fb *FrameBuffer) Empty() bool {
	return fb.width == 0 || fb.height == 0
}

// Pix returns the raw pixel data (RGBA, row-major, 4 bytes per pixel).
// The slice aliases the buffer; callers must treat it as read-only.
func (fb *FrameBuffer) Pix() []uint8 {
	return fb.data
}

// ClearColor returns the color of the most recent Clear.
func (fb *FrameBuffer) ClearColor() RGBA {
	return fb.clear
}

func (fb *FrameBuffer) offset(x, y int) int {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return -1
	}
	return (y*fb.width + x) * 4
}

// SetPixel replaces a single pixel. Out-of-range coordinates are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, c RGBA) {
	i := fb.offset(x, y)
	if i < 0 {
		return
	}
	fb.data[i+0], fb.data[i+1], fb.data[i+2], fb.data[i+3] = c.bytes()
}

// BlendPixel composites c over a single pixel with alpha-over compositing
// (see RGBA.Over). Out-of-range coordinates are ignored.
func (fb *FrameBuffer) BlendPixel(x, y int, c RGBA) {
	i := fb.offset(x, y)
	if i < 0 || !(c.A > 0) {
		return
	}
	if c.A >= 1 {
		fb.data[i+0], fb.data[i+1], fb.data[i+2], fb.data[i+3] = c.bytes()
		return
	}
	dst := RGB8(fb.data[i+0], fb.data[i+1], fb.data[i+2], fb.data[i+3])
	fb.data[i+0], fb.data[i+1], fb.data[i+2], fb.data[i+3] = c.Over(dst).bytes()
}

// GetPixel returns the color of a single pixel, or Transparent out of range.
func (fb *FrameBuffer) GetPixel(x, y int) RGBA {
	i := fb.offset(x, y)
	if i < 0 {
		return Transparent
	}
	return RGB8(fb.data[i+0], fb.data[i+1], fb.data[i+2], fb.data[i+3])
}

// Clear fills the entire buffer with a color and records it as the clear
// color.
func (fb *FrameBuffer) Clear(c RGBA) {
	r, g, b, a := c.bytes()
	for i := 0; i < len(fb.data); i += 4 {
		fb.data[i+0] = r
		fb.data[i+1] = g
		fb.data[i+2] = b
		fb.data[i+3] = a
	}
	fb.clear = c
}

// clearRows fills rows [y0, y1) only. Worker bands use it so each band
// touches nothing outside its rows.
func (fb *FrameBuffer) clearRows(y0, y1 int, c RGBA) {
	r, g, b, a := c.bytes()
	for i := y0 * fb.width * 4; i < y1*fb.width*4; i += 4 {
		fb.data[i+0] = r
		fb.data[i+1] = g
		fb.data[i+2] = b
		fb.data[i+3] = a
	}
}

// Equal reports whether both buffers have the same size and bytes.
func (fb *FrameBuffer) Equal(other *FrameBuffer) bool {
	if other == nil {
		return false
	}
	return fb.width == other.width && fb.height == other.height && bytes.Equal(fb.data, other.data)
}

// Clone returns an independent copy of the buffer.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	out := &FrameBuffer{width: fb.width, height: fb.height, clear: fb.clear}
	out.data = append([]uint8(nil), fb.data...)
	return out
}

// ToImage converts the buffer to an image.NRGBA copy.
func (fb *FrameBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.width, fb.height))
	copy(img.Pix, fb.data)
	return img
}

// ToRGBA converts the buffer to an alpha-premultiplied image.RGBA copy, the
// layout GPU-backed presenters upload directly.
func (fb *FrameBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	draw.Draw(img, img.Rect, fb.ToImage(), image.Point{}, draw.Src)
	return img
}

// U32Buffer returns one 0x00RRGGBB value per pixel in row-major order,
// the layout expected by minifb-style window presenters. Alpha is dropped.
func (fb *FrameBuffer) U32Buffer() []uint32 {
	out := make([]uint32, fb.width*fb.height)
	for i := range out {
		j := i * 4
		out[i] = uint32(fb.data[j])<<16 | uint32(fb.data[j+1])<<8 | uint32(fb.data[j+2])
	}
	return out
}

// Scaled returns a copy of the buffer resampled to width x height with the
// given scaler. A nil scaler uses nearest-neighbor, which keeps hard pixel
// edges when enlarging.
func (fb *FrameBuffer) Scaled(width, height int, s draw.Scaler) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if s == nil {
		s = draw.NearestNeighbor
	}
	if fb.Empty() || dst.Rect.Empty() {
		return dst
	}
	s.Scale(dst, dst.Bounds(), fb.ToImage(), fb.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the buffer as PNG.
func (fb *FrameBuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

// SavePNG saves the buffer to a PNG file.
func (fb *FrameBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := fb.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (fb *FrameBuffer) At(x, y int) color.Color {
	i := fb.offset(x, y)
	if i < 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{R: fb.data[i], G: fb.data[i+1], B: fb.data[i+2], A: fb.data[i+3]}
}

// Bounds implements the image.Image interface.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements the image.Image interface.
func (fb *FrameBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
