// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package palette

import "testing"

func TestFrom8(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want Color
	}{
		{"black", 0, Color{46, 52, 54}},
		{"red", 1, Color{204, 0, 0}},
		{"white", 7, Color{211, 215, 207}},
		{"out of range clamps", 42, Color{211, 215, 207}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := From8(tt.in); got != tt.want {
				t.Errorf("From8(%d) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFrom8Bright(t *testing.T) {
	if got, want := From8Bright(1), (Color{239, 41, 41}); got != want {
		t.Errorf("From8Bright(1) = %+v, want %+v", got, want)
	}
}

func TestFrom256(t *testing.T) {
	tests := []struct {
		in   int
		want Color
	}{
		{0, Color{46, 52, 54}},
		{15, Color{238, 238, 236}},
		{46, Color{0, 255, 0}},
		{232, Color{8, 8, 8}},
		{255, Color{238, 238, 238}},
	}
	for _, tt := range tests {
		if got := From256(tt.in); got != tt.want {
			t.Errorf("From256(%d) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestFrom256Pure(t *testing.T) {
	for i := 0; i < 256; i++ {
		if From256(i) != From256(i) {
			t.Fatalf("From256(%d) is not pure", i)
		}
	}
}

func TestNearestPicksExactMatch(t *testing.T) {
	candidates := Standard256()
	target := Color{204, 0, 0}
	got := Nearest(target, candidates)
	if got != target {
		t.Errorf("Nearest(%+v) = %+v, want exact match", target, got)
	}
}

func TestNearestEmptyCandidates(t *testing.T) {
	if got := Nearest(Color{1, 2, 3}, nil); got != (Color{}) {
		t.Errorf("Nearest with no candidates = %+v, want zero value", got)
	}
}
