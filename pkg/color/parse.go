package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rgbRE = regexp.MustCompile(`^rgb\(\s*([0-9]+)\s*,\s*([0-9]+)\s*,\s*([0-9]+)\s*\)$`)
var rgbPercentRE = regexp.MustCompile(`^rgb\(\s*([0-9.]+)%\s*,\s*([0-9.]+)%\s*,\s*([0-9.]+)%\s*\)$`)

// Parse reads a color written as "#rrggbb", "rrggbb", "rgb(r,g,b)" with
// 0-255 channels, or "rgb(r%,g%,b%)". Percentages are rounded to the nearest
// 8-bit value.
func Parse(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if m := rgbRE.FindStringSubmatch(s); m != nil {
		var ch [3]uint8
		for i, v := range m[1:] {
			n, err := strconv.ParseUint(v, 10, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("channel %q out of range 0-255", v)
			}
			ch[i] = uint8(n)
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	if m := rgbPercentRE.FindStringSubmatch(s); m != nil {
		var ch [3]uint8
		for i, v := range m[1:] {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil || p > 100 {
				return RGB{}, fmt.Errorf("channel %q%% out of range 0-100", v)
			}
			ch[i] = uint8(math.Round(p * 255 / 100))
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	if strings.HasPrefix(s, "rgb") {
		return RGB{}, fmt.Errorf("unknown color description %q", s)
	}
	return ParseHex(s)
}
