// Package raster paints scene instructions into CPU pixel buffers.
//
// It provides the concrete primitives widgets put into scene leaves (Rect,
// Border, GlyphRun, Image), the font machinery that turns strings into
// GlyphRuns, and the two operations a window needs from a rasterizer:
//
//	raster.Clear(dst, r, bg) // restore a damaged region to its background
//	raster.Draw(dst, in)     // paint one instruction over it
//
// Fills use golang.org/x/image/draw; rounded shapes and glyph outlines are
// scan-converted with golang.org/x/image/vector. Text is shaped with
// go-text/typesetting and glyph masks are cached per Fonts instance.
package raster
