//go:build float64

package float

import "math"

// Float is a floating point type. This type alias allows for easy switching between float32 and float64.
type Float = float64

func Floor(n Float) Float {
	return math.Floor(n)
}
