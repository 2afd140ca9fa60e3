package ui2d

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII is packed into the atlas; anything else draws as '?'.
const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	fallback     = '?'
	atlasColumns = 16
)

// Font is a bitmap font atlas built from the basicfont 7x13 face.
type Font struct {
	face    *basicfont.Face
	atlas   *image.Alpha
	cellW   int
	cellH   int
	texture uint32
}

// NewFont rasterises the glyph atlas. The GL texture is created separately
// by the renderer.
func NewFont() *Font {
	face := basicfont.Face7x13
	f := &Font{
		face:  face,
		cellW: face.Advance,
		cellH: face.Height,
	}

	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasColumns - 1) / atlasColumns
	f.atlas = image.NewAlpha(image.Rect(0, 0, atlasColumns*f.cellW, rows*f.cellH))

	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		cx, cy := f.cell(r)
		dot := fixed.P(cx, cy+face.Ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.DrawMask(f.atlas, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
	}
	return f
}

func (f *Font) cell(r rune) (x, y int) {
	if r < firstGlyph || r > lastGlyph {
		r = fallback
	}
	idx := int(r - firstGlyph)
	return (idx % atlasColumns) * f.cellW, (idx / atlasColumns) * f.cellH
}

// Atlas returns the glyph coverage image.
func (f *Font) Atlas() *image.Alpha {
	return f.atlas
}

// GlyphSize returns the size of one glyph cell in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.cellW, f.cellH
}

// GetGlyphUV returns the atlas texture coordinates of r.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	x, y := f.cell(r)
	b := f.atlas.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	return float32(x) / w, float32(y) / h, float32(x+f.cellW) / w, float32(y+f.cellH) / h
}

// MeasureText returns the width and height of rendered text.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	lines, longest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return float32(longest*f.cellW) * scale, float32(lines*f.cellH) * scale
}

// TextureID returns the GL texture, zero until uploaded.
func (f *Font) TextureID() uint32 {
	return f.texture
}
