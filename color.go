package pixl

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a straight (non-premultiplied) color with red, green,
// blue, and alpha components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = NRGBA(0, 0, 0, 0)
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// NRGBA creates a color from straight RGBA components.
func NRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// RGB8 creates a color from 8-bit channels.
func RGB8(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromHex creates an opaque color from a 0xRRGGBB value.
// Bits above the low 24 are ignored.
func FromHex(hex uint32) RGBA {
	return RGB8(uint8(hex>>16), uint8(hex>>8), uint8(hex), 255)
}

// ToHex returns the color as 0x00RRGGBB, dropping alpha. This is the pixel
// layout framebuffer-style presenters expect.
func (c RGBA) ToHex() uint32 {
	r, g, b, _ := c.bytes()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Hex creates a color from a hex string, returning opaque black when the
// string cannot be parsed. Use ParseHex to observe the error.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint32
	v[3] = 255

	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGBA{}, fmt.Errorf("pixl: invalid hex color %q", hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return RGBA{}, fmt.Errorf("pixl: invalid hex color %q", hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return RGBA{}, fmt.Errorf("pixl: invalid hex color %q", hex)
	}

	return RGB8(uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3])), nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}

// String returns the color as #RRGGBBAA.
func (c RGBA) String() string {
	r, g, b, a := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// WithAlpha returns the color with alpha multiplied by k.
// The rasterizer uses it to apply pixel coverage.
func (c RGBA) WithAlpha(k float64) RGBA {
	c.A *= k
	return c
}

// Over composites c over dst with alpha-over compositing:
//
//	rgb = src.rgb*src.a + dst.rgb*(1-src.a)
//	a   = src.a + dst.a*(1-src.a)
func (c RGBA) Over(dst RGBA) RGBA {
	sa := clamp01(c.A)
	inv := 1 - sa
	return RGBA{
		R: c.R*sa + dst.R*inv,
		G: c.G*sa + dst.G*inv,
		B: c.B*sa + dst.B*inv,
		A: sa + dst.A*inv,
	}
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts RGBA to a color.NRGBA.
func (c RGBA) Color() color.Color {
	r, g, b, a := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB8(n.R, n.G, n.B, n.A)
}

// bytes quantizes the color to 8 bits per channel, rounding to nearest.
func (c RGBA) bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// clamp01 restricts a value to [0, 1]; NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
