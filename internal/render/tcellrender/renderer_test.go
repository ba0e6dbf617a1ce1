// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tcellrender

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/pixelterm/internal/palette"
	"github.com/framegrace/pixelterm/internal/screen"
)

func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(10, 10)
	return New(sim), sim
}

func TestDrawFillRectSetsBackgroundAtMappedCell(t *testing.T) {
	r, sim := newSimRenderer(t)
	r.DrawFillRect(screen.CellWidth*2, screen.CellHeight*3, screen.CellWidth, screen.CellHeight, palette.Color{R: 10, G: 20, B: 30})

	_, _, style, _ := sim.GetContent(2, 3)
	fg, bg, _ := style.Decompose()
	_ = fg
	gotR, gotG, gotB := bg.RGB()
	// On a palette-limited screen the renderer snaps the color first.
	wantR, wantG, wantB := r.toTCellColor(palette.Color{R: 10, G: 20, B: 30}).RGB()
	if gotR != wantR || gotG != wantG || gotB != wantB {
		t.Fatalf("got background %d,%d,%d, want %d,%d,%d (10,20,30 as mapped by toTCellColor)", gotR, gotG, gotB, wantR, wantG, wantB)
	}
}

func TestDrawGlyphPreservesBackgroundSetEarlier(t *testing.T) {
	r, sim := newSimRenderer(t)
	r.DrawFillRect(0, 0, screen.CellWidth, screen.CellHeight, palette.Color{R: 5, G: 5, B: 5})
	r.DrawGlyph(rune('x'), 0, 0, screen.CellWidth, screen.CellHeight, palette.Color{R: 200, G: 0, B: 0})

	mainc, _, style, _ := sim.GetContent(0, 0)
	if mainc != 'x' {
		t.Fatalf("got rune %q, want 'x'", mainc)
	}
	_, bg, _ := style.Decompose()
	r8, g8, b8 := bg.RGB()
	wantR, wantG, wantB := r.toTCellColor(palette.Color{R: 5, G: 5, B: 5}).RGB()
	if r8 != wantR || g8 != wantG || b8 != wantB {
		t.Fatalf("background was clobbered by DrawGlyph: got %d,%d,%d, want %d,%d,%d", r8, g8, b8, wantR, wantG, wantB)
	}
}

func TestDrawGlyphIgnoresNonRuneHandle(t *testing.T) {
	r, sim := newSimRenderer(t)
	r.DrawGlyph("not-a-rune", 0, 0, screen.CellWidth, screen.CellHeight, palette.Color{R: 1, G: 1, B: 1})

	mainc, _, _, _ := sim.GetContent(0, 0)
	if mainc != ' ' && mainc != 0 {
		t.Fatalf("expected no rune to have been drawn, got %q", mainc)
	}
}

func TestToTCellColorDowngradesOnLimitedPalette(t *testing.T) {
	r, sim := newSimRenderer(t)
	sim.SetSize(10, 10)

	got := r.toTCellColor(palette.Color{R: 1, G: 2, B: 3})
	rr, gg, bb := got.RGB()
	if int32(rr) == 1 && int32(gg) == 2 && int32(bb) == 3 {
		t.Fatalf("expected an off-palette color to be snapped to a standard-256 entry")
	}
}
