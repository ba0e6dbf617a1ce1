// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ansiblock/block.go
// Summary: The closed set of Block variants the parser emits.
// Usage: Consumed by internal/screen when applying a parsed byte stream.
// Notes: Go has no sum type, so Block is an interface with an unexported
// marker method; the variant set is closed to this package.

package ansiblock

import "github.com/framegrace/pixelterm/internal/cellmodel"
import "github.com/framegrace/pixelterm/internal/palette"

// Block is one indivisible unit produced by BlockStream.Consume: either a
// single UTF-8 codepoint slot, or one interpreted ANSI command.
type Block interface {
	block()
}

type baseBlock struct{}

func (baseBlock) block() {}

// Utf8Block carries one raw UTF-8 codepoint (possibly invalid; validity
// is the glyph cache's concern, not the parser's).
type Utf8Block struct {
	baseBlock
	Bytes cellmodel.Utf8Block
}

// CursorUp moves the cursor up N rows.
type CursorUp struct {
	baseBlock
	N uint16
}

// CursorDown moves the cursor down N rows.
type CursorDown struct {
	baseBlock
	N uint16
}

// CursorForward moves the cursor right N columns.
type CursorForward struct {
	baseBlock
	N uint16
}

// CursorBack moves the cursor left N columns.
type CursorBack struct {
	baseBlock
	N uint16
}

// CursorNextLine moves the cursor to the start of the Nth line below.
type CursorNextLine struct {
	baseBlock
	N uint16
}

// CursorPreviousLine moves the cursor to the start of the Nth line above.
type CursorPreviousLine struct {
	baseBlock
	N uint16
}

// CursorHorizontalAbsolute moves the cursor to column N of the current row.
type CursorHorizontalAbsolute struct {
	baseBlock
	N uint16
}

// CursorPosition moves the cursor to an absolute row/column.
type CursorPosition struct {
	baseBlock
	Row, Col uint16
}

// EraseDisplay clears some or all of the screen, per Type (2 = all).
type EraseDisplay struct {
	baseBlock
	Type uint8
}

// EraseLine clears some or all of the current line, per Type.
type EraseLine struct {
	baseBlock
	Type uint8
}

// ScrollUp scrolls the viewport up N lines.
type ScrollUp struct {
	baseBlock
	N uint16
}

// ScrollDown scrolls the viewport down N lines.
type ScrollDown struct {
	baseBlock
	N uint16
}

// SaveCursor requests the cursor position be remembered.
type SaveCursor struct{ baseBlock }

// LoadCursor requests the previously saved cursor position be restored.
type LoadCursor struct{ baseBlock }

// GraphicsReset restores default cell attributes.
type GraphicsReset struct{ baseBlock }

// GraphicsBold turns on bold for subsequently inserted cells.
type GraphicsBold struct{ baseBlock }

// GraphicsItalic turns on italic for subsequently inserted cells.
type GraphicsItalic struct{ baseBlock }

// GraphicsUnderline turns on underline for subsequently inserted cells.
type GraphicsUnderline struct{ baseBlock }

// GraphicsForeground sets the foreground color for subsequently inserted
// cells.
type GraphicsForeground struct {
	baseBlock
	Color palette.Color
}

// GraphicsBackground sets the background color for subsequently inserted
// cells.
type GraphicsBackground struct {
	baseBlock
	Color palette.Color
}
