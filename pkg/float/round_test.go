package float

import "testing"

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   Float
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{12.5, 13},
		{359.6, 360},
		{99.4999, 99},
		{100, 100},
		{-0.5, 0},
		{-0.6, -1},
	}
	for _, test := range tests {
		if got := RoundHalfUp(test.in); got != test.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", test.in, got, test.want)
		}
	}
}
