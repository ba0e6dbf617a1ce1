// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/glyphcache/cache.go
// Summary: Memoized glyph-to-renderer-handle lookup with sentinel fallback.
// Usage: Consumed by internal/screen once per drawn cell.
// Notes: Rasterization and GPU upload are delegated to a FontBackend and
// Uploader so this package stays free of any windowing/graphics library.

package glyphcache

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/pixelterm/internal/cellmodel"
)

// Handle is whatever token the renderer backend uses to refer to an
// already-uploaded glyph. Its shape is backend-specific; the cache and
// the screen package only ever pass it through.
type Handle any

// RasterImage is one rasterized glyph, white on transparent, sized for a
// single cell. A is the alpha channel; RGB is implicitly white. Rune
// carries the glyph's identity through to backends (like a terminal)
// that draw text natively and have no actual pixel buffer to speak of.
type RasterImage struct {
	Rune          rune
	Width, Height int
	A             []byte
}

// FontBackend answers whether a font can render a rune and rasterizes it.
// Font file discovery and the rasterization library itself are outside
// this package's concern; only this contract matters here.
type FontBackend interface {
	HasGlyph(r rune) bool
	Rasterize(r rune) (RasterImage, error)
}

// Uploader hands a rasterized glyph to the renderer and returns a handle
// for later draw calls.
type Uploader interface {
	Upload(img RasterImage) (Handle, error)
}

// Cache memoizes glyph lookups so repeated characters are rasterized and
// uploaded only once.
type Cache struct {
	font     FontBackend
	uploader Uploader
	memo     map[cellmodel.Utf8Block]Handle
}

// New returns a cache backed by the given font and uploader. Either may
// be nil, in which case Get always resolves to a nil Handle once the
// substitution rules below have run, which is useful in tests that don't
// exercise real rasterization.
func New(font FontBackend, uploader Uploader) *Cache {
	return &Cache{
		font:     font,
		uploader: uploader,
		memo:     make(map[cellmodel.Utf8Block]Handle),
	}
}

// Get resolves glyph to a drawable handle, substituting one of the
// sentinel glyphs from cellmodel when glyph is not valid UTF-8, is a
// combining character with no standalone form, or the font has no glyph
// for it. The result is memoized under the original key so repeated
// lookups of the same substituted glyph also skip straight to the cache.
func (c *Cache) Get(glyph cellmodel.Utf8Block) (Handle, error) {
	if h, ok := c.memo[glyph]; ok {
		return h, nil
	}

	r, effective := c.resolve(glyph)

	if h, ok := c.memo[effective]; ok {
		c.memo[glyph] = h
		return h, nil
	}

	handle, err := c.rasterizeAndUpload(r)
	if err != nil {
		return nil, err
	}

	c.memo[glyph] = handle
	if effective != glyph {
		c.memo[effective] = handle
	}
	return handle, nil
}

// resolve decides which rune actually gets rasterized for glyph, applying
// the UTF-8 validity, combining-character, and font-coverage substitution
// rules in order. It returns the rune alongside the sentinel (or original)
// block it resolved to, for memoization.
func (c *Cache) resolve(glyph cellmodel.Utf8Block) (rune, cellmodel.Utf8Block) {
	r, size := utf8.DecodeRune(glyph.Bytes())
	if r == utf8.RuneError && size <= 1 {
		r, _ = utf8.DecodeRune(cellmodel.InvalidUTF8.Bytes())
		return r, cellmodel.InvalidUTF8
	}
	if runewidth.RuneWidth(r) == 0 {
		r, _ = utf8.DecodeRune(cellmodel.NoGlyphInFont.Bytes())
		return r, cellmodel.NoGlyphInFont
	}
	if c.font != nil && !c.font.HasGlyph(r) {
		r, _ = utf8.DecodeRune(cellmodel.NoGlyphInFont.Bytes())
		return r, cellmodel.NoGlyphInFont
	}
	return r, glyph
}

func (c *Cache) rasterizeAndUpload(r rune) (Handle, error) {
	if c.font == nil || c.uploader == nil {
		return nil, nil
	}
	img, err := c.font.Rasterize(r)
	if err != nil {
		return nil, err
	}
	return c.uploader.Upload(img)
}
