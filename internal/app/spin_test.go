package app

import "testing"

func TestMultiplierBands(t *testing.T) {
	cases := []struct {
		roll float64
		want int
	}{
		{0.0, 0},
		{0.15, 0},
		{0.299999, 0},
		{0.30, 1},
		{0.549999, 1},
		{0.55, 2},
		{0.749999, 2},
		{0.75, 5},
		{0.799999, 5},
		{0.80, 1}, // collapsed reroll band pays x1
		{0.999999, 1},
	}
	for _, tc := range cases {
		if got := multiplierFor(tc.roll); got != tc.want {
			t.Fatalf("multiplierFor(%v) = %d, want %d", tc.roll, got, tc.want)
		}
	}
}
