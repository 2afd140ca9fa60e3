package ui2d

import "math"

// Vertex layouts.
const (
	solidStride = 7 // x, y, z, r, g, b, a
	textStride  = 9 // x, y, z, u, v, r, g, b, a
)

// Batch collects UI geometry for one frame. It is independent of GL so
// layout can run without a context.
type Batch struct {
	solid []float32
	text  []float32
	font  *Font
}

// NewBatch creates a batch drawing text with font.
func NewBatch(font *Font) *Batch {
	return &Batch{
		solid: make([]float32, 0, 4096),
		text:  make([]float32, 0, 4096),
		font:  font,
	}
}

// Reset empties the batch for a new frame.
func (b *Batch) Reset() {
	b.solid = b.solid[:0]
	b.text = b.text[:0]
}

// Font returns the batch font.
func (b *Batch) Font() *Font {
	return b.font
}

// SolidVertexCount returns the number of queued solid vertices.
func (b *Batch) SolidVertexCount() int {
	return len(b.solid) / solidStride
}

// TextVertexCount returns the number of queued text vertices.
func (b *Batch) TextVertexCount() int {
	return len(b.text) / textStride
}

// DrawRect draws a filled rectangle.
func (b *Batch) DrawRect(x, y, width, height float32, color Color) {
	b.addQuad(x, y, width, height, color)
}

// DrawRectOutline draws a rectangle outline.
func (b *Batch) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	b.addQuad(x, y, width, thickness, color)
	b.addQuad(x, y+height-thickness, width, thickness, color)
	b.addQuad(x, y+thickness, thickness, height-thickness*2, color)
	b.addQuad(x+width-thickness, y+thickness, thickness, height-thickness*2, color)
}

// DrawPanel draws a panel with border.
func (b *Batch) DrawPanel(x, y, width, height float32, bg, border Color) {
	b.DrawRect(x, y, width, height, bg)
	b.DrawRectOutline(x, y, width, height, 1, border)
}

// DrawLine draws a segment of the given thickness.
func (b *Batch) DrawLine(x0, y0, x1, y1, thickness float32, c Color) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*thickness/2, dx/l*thickness/2
	b.addTri(x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, c)
	b.addTri(x0+nx, y0+ny, x1-nx, y1-ny, x0-nx, y0-ny, c)
}

// DrawCircle draws a filled disc.
func (b *Batch) DrawCircle(cx, cy, radius float32, c Color) {
	n := segments(radius)
	px, py := cx+radius, cy
	for i := 1; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		b.addTri(cx, cy, px, py, x, y, c)
		px, py = x, y
	}
}

// DrawRing draws a circle outline.
func (b *Batch) DrawRing(cx, cy, radius, thickness float32, c Color) {
	n := segments(radius)
	inner := radius - thickness/2
	outer := radius + thickness/2
	for i := 0; i < n; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(n)
		a1 := 2 * math.Pi * float64(i+1) / float64(n)
		c0, s0 := float32(math.Cos(a0)), float32(math.Sin(a0))
		c1, s1 := float32(math.Cos(a1)), float32(math.Sin(a1))
		b.addTri(cx+c0*inner, cy+s0*inner, cx+c0*outer, cy+s0*outer, cx+c1*outer, cy+s1*outer, c)
		b.addTri(cx+c0*inner, cy+s0*inner, cx+c1*outer, cy+s1*outer, cx+c1*inner, cy+s1*inner, c)
	}
}

func segments(radius float32) int {
	return min(max(int(radius), 12), 64)
}

// DrawText draws text at the given position.
func (b *Batch) DrawText(x, y float32, text string, scale float32, color Color) {
	if b.font == nil {
		return
	}

	gw, gh := b.font.GlyphSize()
	charW := float32(gw) * scale
	charH := float32(gh) * scale

	curX := x
	for _, char := range text {
		if char == '\n' {
			curX = x
			y += charH
			continue
		}
		if char != ' ' {
			u0, v0, u1, v1 := b.font.GetGlyphUV(char)
			b.addTexturedQuad(curX, y, charW, charH, u0, v0, u1, v1, color)
		}
		curX += charW
	}
}

// MeasureText returns the width and height of rendered text.
func (b *Batch) MeasureText(text string, scale float32) (float32, float32) {
	if b.font == nil {
		return 0, 0
	}
	return b.font.MeasureText(text, scale)
}

func (b *Batch) addQuad(x, y, w, h float32, c Color) {
	b.addTri(x, y, x+w, y, x+w, y+h, c)
	b.addTri(x, y, x+w, y+h, x, y+h, c)
}

func (b *Batch) addTri(x0, y0, x1, y1, x2, y2 float32, c Color) {
	b.solid = append(b.solid,
		x0, y0, 0, c.R, c.G, c.B, c.A,
		x1, y1, 0, c.R, c.G, c.B, c.A,
		x2, y2, 0, c.R, c.G, c.B, c.A,
	)
}

func (b *Batch) addTexturedQuad(x, y, w, h float32, u0, v0, u1, v1 float32, c Color) {
	b.text = append(b.text,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}
