package float

// RoundHalfUp rounds n to the nearest integer, with halves rounding up.
// n - Floor(n) is exact for the magnitudes used here, so no 0.49999 drift.
func RoundHalfUp(n Float) int {
	f := Floor(n)
	if n-f >= 0.5 {
		f++
	}
	return int(f)
}
