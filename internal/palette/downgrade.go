// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/palette/downgrade.go
// Summary: Nearest-color matching for renderer backends without truecolor.
// Usage: Consumed by internal/render/tcellrender when the active terminal
// can't display 24-bit color.
// Notes: Uses Lab-space distance rather than naive RGB distance, since
// Lab tracks perceived closeness better across hue boundaries.

package palette

import "github.com/lucasb-eyer/go-colorful"

// Nearest returns the entry of candidates whose color is perceptually
// closest to c, by CIE76 distance in Lab space. candidates must be
// non-empty; passing an empty slice returns the zero Color.
func Nearest(c Color, candidates []Color) Color {
	if len(candidates) == 0 {
		return Color{}
	}
	target := toColorful(c)
	best := candidates[0]
	bestDist := target.DistanceLab(toColorful(best))
	for _, cand := range candidates[1:] {
		d := target.DistanceLab(toColorful(cand))
		if d < bestDist {
			bestDist = d
			best = cand
		}
	}
	return best
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Standard256 returns the 256-entry palette suitable for use as the
// candidate set passed to Nearest.
func Standard256() []Color {
	out := make([]Color, len(from256Table))
	copy(out, from256Table[:])
	return out
}
