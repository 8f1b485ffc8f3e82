package rules

import "testing"

func TestNext(t *testing.T) {
	cases := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"live cell with zero neighbors dies", true, 0, false},
		{"live cell with one neighbor dies", true, 1, false},
		{"live cell with two neighbors survives", true, 2, true},
		{"live cell with three neighbors survives", true, 3, true},
		{"live cell with four neighbors dies", true, 4, false},
		{"live cell with eight neighbors dies", true, 8, false},
		{"dead cell with two neighbors stays dead", false, 2, false},
		{"dead cell with three neighbors is born", false, 3, true},
		{"dead cell with four neighbors stays dead", false, 4, false},
	}

	for _, tc := range cases {
		if got := Next(tc.alive, tc.neighbors); got != tc.want {
			t.Errorf("%s: Next(%v, %d) = %v, want %v", tc.name, tc.alive, tc.neighbors, got, tc.want)
		}
	}
}
