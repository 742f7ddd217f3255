package ggchart

import (
	"fmt"
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Values outside that range are kept
// as given; sinks clamp when they convert to 8-bit channels.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return c.NRGBA()
}

// NRGBA converts RGBA to a non-premultiplied 8-bit color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black; use ParseHex to detect it.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex is like Hex but reports malformed input.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) &&
			parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) &&
			parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return RGBA{}, fmt.Errorf("ggchart: invalid hex color %q", hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// Hex returns the color formatted as "#RRGGBBAA".
func (c RGBA) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
