// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/render/tcellrender/font.go
// Summary: Font/Uploader stand-ins for a terminal backend that draws
// runes natively and needs no rasterized glyph of its own.
// Notes: Font file discovery and glyph rasterization are explicitly out
// of the core's scope; no rasterization library is a real dependency of
// any retrieved example repository, so this stays on the standard
// library by design rather than by omission.

package tcellrender

import (
	"unicode"

	"github.com/framegrace/pixelterm/internal/glyphcache"
)

// Font reports every printable rune as available, since the terminal's
// own font renders whatever its locale supports; there is no glyph
// table to consult.
type Font struct{}

// HasGlyph reports whether r is printable at all. Control characters
// never reach here: internal/screen handles \n, \r, \b, \t, \a and NUL
// itself, and the glyph cache substitutes the no-glyph sentinel for every
// other zero-width rune before consulting the font.
func (Font) HasGlyph(r rune) bool {
	return unicode.IsPrint(r)
}

// Rasterize returns an image carrying only the rune's identity; there is
// no pixel buffer, because Uploader below hands that identity straight
// to the renderer instead of a bitmap.
func (Font) Rasterize(r rune) (glyphcache.RasterImage, error) {
	return glyphcache.RasterImage{Rune: r, Width: 1, Height: 1}, nil
}

// Uploader hands back the rune itself as the glyph handle: tcellrender's
// Renderer.DrawGlyph expects exactly that.
type Uploader struct{}

// Upload is a pass-through; see Font.Rasterize.
func (Uploader) Upload(img glyphcache.RasterImage) (glyphcache.Handle, error) {
	return img.Rune, nil
}
