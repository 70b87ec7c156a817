//go:build !float64

package float

import "github.com/chewxy/math32"

// Float is a floating point type. This type alias allows for easy switching between float32 and float64.
// The HSB conversion is tuned for float32, which matches the reference fixtures near rule edges.
type Float = float32

func Floor(n Float) Float {
	return math32.Floor(n)
}
