package pixl

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"opaque red", Red, 65535, 0, 0, 65535},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"50% alpha red", NRGBA(1, 0, 0, 0.5), 32896, 0, 0, 32896},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRGBA_Over(t *testing.T) {
	tests := []struct {
		name     string
		src, dst RGBA
		want     RGBA
	}{
		{"opaque replaces", Red, Blue, Red},
		{"transparent keeps", Transparent, Blue, Blue},
		{"half white over black", NRGBA(1, 1, 1, 0.5), Black, RGBA{0.5, 0.5, 0.5, 1}},
		{"half red over transparent", NRGBA(1, 0, 0, 0.5), Transparent, RGBA{0.5, 0, 0, 0.5}},
		{"quarter over quarter", NRGBA(0, 1, 0, 0.25), NRGBA(0, 0, 1, 0.25), RGBA{0, 0.25, 0.75, 0.4375}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.src.Over(tt.dst)
			if !approxColor(got, tt.want, 1e-9) {
				t.Errorf("Over() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func approxColor(a, b RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#ff0000", Red, false},
		{"00ff00", Green, false},
		{"#00f", Blue, false},
		{"#ffffff80", RGB8(255, 255, 255, 128), false},
		{"fff8", RGB8(255, 255, 255, 136), false},
		{"#ABCDEF", RGB8(0xab, 0xcd, 0xef, 255), false},
		{"", RGBA{}, true},
		{"#12345", RGBA{}, true},
		{"#gg0000", RGBA{}, true},
		{"#", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexFallback(t *testing.T) {
	if got := Hex("not a color"); got != Black {
		t.Errorf("Hex(invalid) = %v, want black", got)
	}
	if got := Hex("#0000ff"); got != Blue {
		t.Errorf("Hex(#0000ff) = %v, want blue", got)
	}
}

func TestFromHexToHex(t *testing.T) {
	for _, v := range []uint32{0x000000, 0xffffff, 0x123456, 0xff8000} {
		c := FromHex(v)
		if c.A != 1 {
			t.Errorf("FromHex(%#06x).A = %v, want 1", v, c.A)
		}
		if got := c.ToHex(); got != v {
			t.Errorf("FromHex(%#06x).ToHex() = %#06x", v, got)
		}
	}
	if got := FromHex(0xff123456).ToHex(); got != 0x123456 {
		t.Errorf("high bits not ignored: %#x", got)
	}
}

func TestRGBA_String(t *testing.T) {
	if got := NRGBA(1, 0.5, 0, 0.5).String(); got != "#ff800080" {
		t.Errorf("String() = %q, want #ff800080", got)
	}
}

func TestRGBA_WithAlpha(t *testing.T) {
	c := NRGBA(1, 1, 1, 0.8).WithAlpha(0.5)
	if math.Abs(c.A-0.4) > 1e-12 {
		t.Errorf("WithAlpha(0.5).A = %v, want 0.4", c.A)
	}
	if c.R != 1 {
		t.Errorf("WithAlpha changed R: %v", c.R)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	if got != RGB8(255, 128, 0, 255) {
		t.Errorf("FromColor() = %v", got)
	}
}

func TestTo8Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := to8(tt.in); got != tt.want {
			t.Errorf("to8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
