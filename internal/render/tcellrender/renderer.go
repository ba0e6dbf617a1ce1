// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/render/tcellrender/renderer.go
// Summary: tcell-backed implementation of the screen.Renderer contract.
// Usage: Wired into internal/screen and internal/glyphcache from cmd/pixelterm.
// Notes: tcell draws whole terminal cells natively, so "rasterize and
// upload a glyph" collapses to "remember which rune to draw" - there is
// no pixel buffer anywhere in this adapter.

package tcellrender

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/pixelterm/internal/glyphcache"
	"github.com/framegrace/pixelterm/internal/palette"
	"github.com/framegrace/pixelterm/internal/screen"
)

// Renderer adapts a tcell.Screen to the screen.Renderer contract. Pixel
// coordinates from the Screen model are mapped down to terminal cell
// coordinates by the fixed CellWidth/CellHeight geometry.
type Renderer struct {
	screen tcell.Screen
}

// New wraps an already-initialized tcell.Screen.
func New(s tcell.Screen) *Renderer {
	return &Renderer{screen: s}
}

// Clear blanks the whole terminal.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// DrawFillRect paints the background of the cell at the given pixel
// origin. w and h are accepted for interface symmetry but are always
// exactly one cell's worth in this core.
func (r *Renderer) DrawFillRect(x, y, w, h int, c palette.Color) {
	col, row := x/screen.CellWidth, y/screen.CellHeight
	_, _, style, _ := r.screen.GetContent(col, row)
	r.screen.SetContent(col, row, ' ', nil, style.Background(r.toTCellColor(c)))
}

// DrawGlyph draws the rune identified by h at the given pixel origin,
// preserving whatever background DrawFillRect already set for that cell.
func (r *Renderer) DrawGlyph(h glyphcache.Handle, x, y, w, h2 int, fg palette.Color) {
	rn, ok := h.(rune)
	if !ok {
		return
	}
	col, row := x/screen.CellWidth, y/screen.CellHeight
	_, _, style, _ := r.screen.GetContent(col, row)
	r.screen.SetContent(col, row, rn, nil, style.Foreground(r.toTCellColor(fg)))
}

// Present flushes pending cell changes to the terminal.
func (r *Renderer) Present() {
	r.screen.Show()
}

// truecolorThreshold is the color count tcell reports for a terminal that
// advertises 24-bit color support.
const truecolorThreshold = 1 << 24

// toTCellColor passes truecolor through untouched, but snaps to the
// nearest xterm-256 entry by perceptual distance on a palette-limited
// terminal rather than leaving the quantization to tcell's own mapping.
func (r *Renderer) toTCellColor(c palette.Color) tcell.Color {
	if r.screen.Colors() < truecolorThreshold {
		c = palette.Nearest(c, palette.Standard256())
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
