// Package paint holds the color type shared by primitives, backgrounds and
// configuration.
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("paint: invalid hex color")

// RGBA represents a straight (non-premultiplied) color.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	ca := clamp01(c.A)
	r = uint32(clamp01(c.R)*ca*0xffff + 0.5)
	g = uint32(clamp01(c.G)*ca*0xffff + 0.5)
	b = uint32(clamp01(c.B)*ca*0xffff + 0.5)
	a = uint32(ca*0xffff + 0.5)
	return r, g, b, a
}

// NRGBA converts to an 8-bit straight-alpha color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Premul converts to an 8-bit premultiplied color, the layout of
// image.RGBA pixels.
func (c RGBA) Premul() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: to8(c.R * a),
		G: to8(c.G * a),
		B: to8(c.B * a),
		A: to8(a),
	}
}

// IsOpaque reports whether the color fully covers what lies beneath.
func (c RGBA) IsOpaque() bool { return c.A >= 1 }

// IsTransparent reports whether the color has no coverage.
func (c RGBA) IsTransparent() bool { return c.A <= 0 }

// Over composites c on top of dst using source-over.
func (c RGBA) Over(dst RGBA) RGBA {
	sa := clamp01(c.A)
	da := clamp01(dst.A)
	oa := sa + da*(1-sa)
	if oa == 0 {
		return RGBA{}
	}
	blend := func(s, d float64) float64 {
		return (s*sa + d*da*(1-sa)) / oa
	}
	return RGBA{
		R: blend(c.R, dst.R),
		G: blend(c.G, dst.G),
		B: blend(c.B, dst.B),
		A: oa,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex formats the color as "#rrggbbaa".
func (c RGBA) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// String implements fmt.Stringer.
func (c RGBA) String() string { return c.Hex() }

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without
// a leading '#'.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	digits := make([]uint32, len(hex))
	for i := 0; i < len(hex); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		digits[i] = v
	}

	var r, g, b, a uint32
	a = 255
	switch len(digits) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(digits) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// Hex creates a color from a hex string, returning opaque black when the
// string is malformed.
func Hex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8(x float64) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
