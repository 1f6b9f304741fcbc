package joystick

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an opaque RGB color value.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a CSS hex string.
func (c Color) Hex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

// RGBA converts the color for use with the image packages.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0x0f]})
}

// ParseHex parses a CSS hex color in "#rgb" or "#rrggbb" form.
// The leading '#' is optional and case is ignored.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if (len(h) != 3 && len(h) != 6) || strings.Trim(h, "0123456789abcdefABCDEF") != "" {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// lerp blends a toward b by t in [0,1].
func (c Color) lerp(b Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return Color{R: mix(c.R, b.R), G: mix(c.G, b.G), B: mix(c.B, b.B)}
}
