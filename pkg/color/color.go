package color

import (
	"fmt"
	"strings"

	"colorclass/pkg/float"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel color, as read from a color name table or
// supplied by a caller.
type RGB struct {
	R, G, B uint8
}

// HSB is a hue/saturation/brightness triple in display units: hue in
// degrees (0-360), saturation and brightness in percent (0-100).
//
// Hue can be 360 when the fractional hue rounds up; it is not folded back to 0.
type HSB struct {
	Hue        int
	Saturation int
	Brightness int
}

func (h HSB) String() string {
	return fmt.Sprintf("Hsb{hue=%d, saturation=%d, brightness=%d}", h.Hue, h.Saturation, h.Brightness)
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex decodes "rrggbb", "#rrggbb" or "0xrrggbb" (the short "#rgb" form
// is also accepted) into an RGB value.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func min3(a, b, c uint8) uint8 {
	if c < b {
		b = c
	}
	if b < a {
		a = b
	}
	return a
}

func max3(a, b, c uint8) uint8 {
	if b < a {
		b = a
	}
	if c < b {
		c = b
	}
	return c
}

// ToHsb converts an RGB color to HSB using the max/min channel formula.
// All intermediate values are single precision and each channel is rounded
// half-up after scaling, so colors sitting on a rule boundary land on the
// same integer every time.
func ToHsb(c RGB) HSB {
	cmax := max3(c.R, c.G, c.B)
	cmin := min3(c.R, c.G, c.B)

	brightness := float.Float(cmax) / 255
	var saturation, hue float.Float
	if cmax != 0 {
		saturation = float.Float(cmax-cmin) / float.Float(cmax)
	}

	if saturation != 0 {
		span := float.Float(cmax - cmin)
		redc := float.Float(cmax-c.R) / span
		greenc := float.Float(cmax-c.G) / span
		bluec := float.Float(cmax-c.B) / span

		switch cmax {
		case c.R:
			hue = bluec - greenc
		case c.G:
			hue = float.Float(2+redc) - bluec
		default:
			hue = float.Float(4+greenc) - redc
		}
		hue = hue / 6
		if hue < 0 {
			hue = hue + 1
		}
	}

	return HSB{
		Hue:        float.RoundHalfUp(float.Float(hue * 360)),
		Saturation: float.RoundHalfUp(float.Float(saturation * 100)),
		Brightness: float.RoundHalfUp(float.Float(brightness * 100)),
	}
}
