// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import "testing"

func TestMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{170, 1, 170, 1}, 85.5},
	}

	for _, tt := range tests {
		checkFloat(t, tt.name, median(tt.in), tt.want)
	}
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []float64{3, 1, 2}
	median(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input was reordered: %v", in)
	}
}

func TestPearson(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"perfect negative", []float64{1, 2, 3}, []float64{6, 4, 2}, -1},
		{"constant x is undefined", []float64{1, 1, 1}, []float64{1, 2, 3}, 0},
		{"single point", []float64{1}, []float64{1}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1}, 0},
		{"binary feature", []float64{1, 0, 1, 0}, []float64{10, 0, 10, 0}, 1},
	}

	for _, tt := range tests {
		checkFloat(t, tt.name, pearson(tt.xs, tt.ys), tt.want)
	}
}

func TestMeanAndMax_Empty(t *testing.T) {
	t.Parallel()

	checkFloat(t, "mean", mean(nil), 0)
	checkFloat(t, "maxOf", maxOf(nil), 0)
	checkFloat(t, "maxOf", maxOf([]float64{2, 9, 4}), 9)
}
