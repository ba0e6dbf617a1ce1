// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/screen/screen.go
// Summary: Lines of cells, cursor, insertion position, and scroll anchor.
// Usage: Consumed by internal/ioloop, once per Block produced by the parser.
// Notes: Drawing is delegated to a Renderer/GlyphCache pair so this package
// stays independent of any concrete graphics backend.

package screen

import (
	"github.com/framegrace/pixelterm/internal/ansiblock"
	"github.com/framegrace/pixelterm/internal/cellmodel"
	"github.com/framegrace/pixelterm/internal/glyphcache"
	"github.com/framegrace/pixelterm/internal/palette"
)

// Geometry, per spec.
const (
	CellWidth     = 8
	CellHeight    = 16
	CellsPerWidth = 80
	ScreenWidth   = CellWidth * CellsPerWidth
	ScreenHeight  = CellHeight * 24
)

// GlyphCache resolves a glyph to a backend-specific handle for drawing.
// Screen depends only on this narrow contract, not on any concrete cache.
type GlyphCache interface {
	Get(glyph cellmodel.Utf8Block) (glyphcache.Handle, error)
}

// Renderer is the external collaborator's contract from spec.md §6.
// Window/renderer creation, font discovery, and glyph rasterization are
// out of scope for this package; only this interface matters here.
type Renderer interface {
	Clear()
	DrawFillRect(x, y, w, h int, c palette.Color)
	DrawGlyph(h glyphcache.Handle, x, y, w, h2 int, fg palette.Color)
	Present()
}

// Screen owns the scrollback lines, cursor, and insertion/scroll state
// described in spec.md §3, and applies parsed Blocks to them.
type Screen struct {
	lines []cellmodel.Line

	cursorPixelX, cursorPixelY int
	insertLine, insertCell     int
	startLine, startCell       int
	currentAttrs               cellmodel.CellAttributes

	glyphCache GlyphCache
	renderer   Renderer
}

// New returns a fresh Screen with one empty line and default attributes.
// glyphCache and renderer may be nil for tests that only inspect state.
func New(glyphCache GlyphCache, renderer Renderer) *Screen {
	return &Screen{
		lines:        []cellmodel.Line{{}},
		currentAttrs: cellmodel.DefaultAttributes(),
		glyphCache:   glyphCache,
		renderer:     renderer,
	}
}

// Lines returns the current scrollback, oldest first.
func (s *Screen) Lines() []cellmodel.Line { return s.lines }

// CursorPixel returns the pixel origin of the next incoming glyph.
func (s *Screen) CursorPixel() (x, y int) { return s.cursorPixelX, s.cursorPixelY }

// Insert returns the logical (unwrapped) insertion position.
func (s *Screen) Insert() (line, cell int) { return s.insertLine, s.insertCell }

// Start returns the scroll anchor: the content position at the viewport's
// top-left.
func (s *Screen) Start() (line, cell int) { return s.startLine, s.startCell }

// SetStart moves the scroll anchor, e.g. in response to a mouse wheel
// event. Out-of-range values are clamped so invariant 1/2 keep holding.
func (s *Screen) SetStart(line, cell int) {
	if line < 0 {
		line = 0
	}
	if line >= len(s.lines) {
		line = len(s.lines) - 1
	}
	if cell < 0 {
		cell = 0
	}
	s.startLine, s.startCell = line, cell
}

// CurrentAttrs returns the attributes that will be applied to the next
// inserted cell.
func (s *Screen) CurrentAttrs() cellmodel.CellAttributes { return s.currentAttrs }

// Apply mutates screen state per one Block. Idempotence is not required.
func (s *Screen) Apply(block ansiblock.Block) {
	switch blk := block.(type) {
	case ansiblock.Utf8Block:
		s.applyUtf8(blk.Bytes)
	case ansiblock.CursorDown:
		for i := uint16(0); i < blk.N; i++ {
			s.moveDown()
		}
	case ansiblock.GraphicsForeground:
		s.currentAttrs.Fg = blk.Color
	case ansiblock.GraphicsBackground:
		s.currentAttrs.Bg = blk.Color
	case ansiblock.GraphicsReset:
		s.currentAttrs = cellmodel.DefaultAttributes()
	case ansiblock.GraphicsBold:
		s.currentAttrs.Bold = true
	case ansiblock.GraphicsItalic:
		s.currentAttrs.Italic = true
	case ansiblock.GraphicsUnderline:
		s.currentAttrs.Underline = true
	case ansiblock.EraseDisplay:
		if blk.Type == 2 {
			s.clearAll()
		}
	default:
		// CursorUp/Forward/Back/NextLine/PreviousLine/HorizontalAbsolute/
		// Position, EraseLine, ScrollUp/Down, SaveCursor/LoadCursor are
		// accepted but unimplemented in this core; applying them is a
		// deliberate no-op and must never violate the invariants above.
	}
}

func (s *Screen) applyUtf8(glyph cellmodel.Utf8Block) {
	switch glyph.First() {
	case '\n':
		s.moveDown()
	case '\r':
		s.cursorPixelX = 0
		s.insertCell = (s.insertCell / CellsPerWidth) * CellsPerWidth
	case '\b':
		s.backspace()
	case '\t':
		s.tab()
	case '\a', 0x00:
		// bell and NUL are no-ops in this core.
	default:
		s.printGlyph(glyph)
	}
}

// moveDown is \n and CursorDown's shared primitive: it advances the pixel
// cursor's row without touching its column, and advances the logical
// insertion position to column 0 of the next line, creating that line
// if it doesn't exist yet.
func (s *Screen) moveDown() {
	s.cursorPixelY += CellHeight
	s.insertLine++
	if s.insertLine >= len(s.lines) {
		s.lines = append(s.lines, cellmodel.Line{})
	}
	s.insertCell = 0
}

func (s *Screen) backspace() {
	s.cursorPixelX -= CellWidth
	if s.cursorPixelX < 0 {
		s.cursorPixelX = ScreenWidth - CellWidth
		s.cursorPixelY -= CellHeight
	}
	if s.cursorPixelY < 0 {
		s.cursorPixelX = 0
		s.cursorPixelY = 0
	}
	s.insertCell--
	if s.insertCell < 0 {
		if s.insertLine > 0 {
			s.insertLine--
		}
		s.insertCell = 0
	}
}

func (s *Screen) tab() {
	for {
		s.printGlyph(cellmodel.Space)
		if (s.cursorPixelX/CellWidth)%8 == 0 {
			return
		}
	}
}

// printGlyph is the "anything else" branch: draw the glyph, advance the
// pixel cursor with wraparound, and overwrite the logical cell.
func (s *Screen) printGlyph(glyph cellmodel.Utf8Block) {
	cell := cellmodel.Cell{Glyph: glyph, Attributes: s.currentAttrs}
	s.drawCell(s.cursorPixelX, s.cursorPixelY, cell)

	s.cursorPixelX += CellWidth
	if s.cursorPixelX >= ScreenWidth {
		s.cursorPixelX = 0
		s.cursorPixelY += CellHeight
	}

	line := s.lines[s.insertLine].PadTo(s.insertCell + 1)
	line[s.insertCell] = cell
	s.lines[s.insertLine] = line
	s.insertCell++
}

func (s *Screen) clearAll() {
	s.currentAttrs = cellmodel.DefaultAttributes()
	s.cursorPixelX, s.cursorPixelY = 0, 0
	s.startLine, s.startCell = 0, 0
	s.insertLine, s.insertCell = 0, 0
	s.lines = []cellmodel.Line{{}}
}

func (s *Screen) drawCell(px, py int, cell cellmodel.Cell) {
	if s.renderer == nil || s.glyphCache == nil {
		return
	}
	s.renderer.DrawFillRect(px, py, CellWidth, CellHeight, cell.Attributes.Bg)
	handle, err := s.glyphCache.Get(cell.Glyph)
	if err != nil {
		// A glyph that fails to rasterize or upload is drawn as the
		// no-glyph sentinel instead; if that fails too, the renderer has
		// nothing drawable, so the cell keeps only its background.
		handle, err = s.glyphCache.Get(cellmodel.NoGlyphInFont)
		if err != nil {
			return
		}
	}
	s.renderer.DrawGlyph(handle, px, py, CellWidth, CellHeight, cell.Attributes.Fg)
}

// Redraw walks the scrollback from the scroll anchor and repaints the
// whole viewport, for use after a scroll or resize.
func (s *Screen) Redraw() {
	if s.renderer == nil {
		return
	}
	s.renderer.Clear()

	line, col := s.startLine, s.startCell
	px, py := 0, 0

	for py < ScreenHeight {
		if line >= len(s.lines) {
			break
		}
		cells := s.lines[line]

		if len(cells) == 0 {
			line++
			col, px = 0, 0
			py += CellHeight
			continue
		}
		if col >= len(cells) {
			line++
			col = 0
			if px != 0 {
				px = 0
				py += CellHeight
			}
			continue
		}

		s.drawCell(px, py, cells[col])
		col++
		px += CellWidth
		if px >= ScreenWidth {
			px = 0
			py += CellHeight
		}
	}

	s.renderer.Present()
}
