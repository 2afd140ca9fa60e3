package ui2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/asaro-studio/internal/params"
)

func newTestContext() *Context {
	return NewContext(NewBatch(NewFont()))
}

// frame runs one UI frame with the pointer at (x, y).
func frame(c *Context, x, y float32, down bool, draw func()) {
	c.Input().MouseX, c.Input().MouseY = x, y
	c.Input().MouseLeftDown = down
	c.Begin()
	c.BeginPanel("panel", 0, 0, 300, 600, "")
	draw()
	c.EndPanel()
	c.End()
}

func TestFontAtlas(t *testing.T) {
	f := NewFont()
	w, h := f.GlyphSize()
	assert.Equal(t, 7, w)
	assert.Equal(t, 13, h)

	b := f.Atlas().Bounds()
	assert.Equal(t, 16*7, b.Dx())
	assert.Equal(t, 6*13, b.Dy())

	coverage := func(r rune) int {
		x, y := f.cell(r)
		n := 0
		for py := y; py < y+h; py++ {
			for px := x; px < x+w; px++ {
				if f.Atlas().AlphaAt(px, py).A > 0 {
					n++
				}
			}
		}
		return n
	}
	assert.Zero(t, coverage(' '))
	assert.NotZero(t, coverage('A'))

	// Unknown runes share the fallback cell
	u0, v0, _, _ := f.GetGlyphUV('?')
	e0, f0, _, _ := f.GetGlyphUV('é')
	assert.Equal(t, u0, e0)
	assert.Equal(t, v0, f0)
}

func TestMeasureText(t *testing.T) {
	f := NewFont()
	w, h := f.MeasureText("abc\nde", 2)
	assert.Equal(t, float32(3*7*2), w)
	assert.Equal(t, float32(2*13*2), h)
}

func TestBatchGeometry(t *testing.T) {
	b := NewBatch(NewFont())
	b.DrawRect(0, 0, 10, 10, ColorWhite)
	assert.Equal(t, 6, b.SolidVertexCount())

	b.DrawRectOutline(0, 0, 10, 10, 1, ColorWhite)
	assert.Equal(t, 6+24, b.SolidVertexCount())

	b.DrawLine(0, 0, 0, 0, 2, ColorWhite)
	assert.Equal(t, 30, b.SolidVertexCount(), "degenerate line draws nothing")

	b.DrawText(0, 0, "a b", 1, ColorWhite)
	assert.Equal(t, 2*6, b.TextVertexCount(), "spaces emit no quads")

	b.Reset()
	assert.Zero(t, b.SolidVertexCount())
	assert.Zero(t, b.TextVertexCount())

	b.DrawCircle(50, 50, 5, ColorWhite)
	assert.Equal(t, 12*3, b.SolidVertexCount())
}

func TestCheckboxTogglesOnRelease(t *testing.T) {
	c := newTestContext()
	checked := false
	draw := func() { checked = c.Checkbox("cb", "Helper", checked) }

	// The checkbox is the first row below the panel padding
	x, y := float32(20), panelPadding+4

	frame(c, x, y, true, draw)
	assert.False(t, checked, "press alone does not toggle")
	frame(c, x, y, false, draw)
	assert.True(t, checked)

	// Press inside, release outside
	frame(c, x, y, true, draw)
	frame(c, x, 500, false, draw)
	assert.True(t, checked)
}

func TestClickLatchedWithinFrame(t *testing.T) {
	c := newTestContext()
	checked := false
	draw := func() { checked = c.Checkbox("cb", "Helper", checked) }

	c.Input().MouseLeftClicked = true
	frame(c, 20, panelPadding+4, false, draw)
	assert.True(t, checked)
}

func TestSectionCollapsedByDefault(t *testing.T) {
	c := newTestContext()
	var open bool
	draw := func() {
		open = c.Section("light", "Primary Light", ColorHighlight)
		if open {
			c.EndSection()
		}
	}

	frame(c, 500, 500, false, draw)
	assert.False(t, open)

	frame(c, 100, panelPadding+5, true, draw)
	frame(c, 100, panelPadding+5, false, draw)
	frame(c, 500, 500, false, draw)
	assert.True(t, open)

	c.SetSectionOpen("panel", "light", false)
	frame(c, 500, 500, false, draw)
	assert.False(t, open)
}

func TestColumns(t *testing.T) {
	c := newTestContext()
	var cells []Rect
	frame(c, 0, 0, false, func() { cells = c.Columns(3, 80) })

	require.Len(t, cells, 3)
	content := float32(300) - panelPadding*2
	assert.InDelta(t, (content-16)/3, cells[0].W, 1e-4)
	assert.Equal(t, panelPadding, cells[0].X)
	assert.InDelta(t, panelPadding+content, cells[2].X+cells[2].W, 1e-3)
	for _, r := range cells {
		assert.Equal(t, float32(80), r.H)
	}
}

func TestSwatchesPick(t *testing.T) {
	c := newTestContext()
	palette := []Color{ColorWhite, ColorBlack, ColorHighlight}
	var picked int
	var ok bool
	draw := func() { picked, ok = c.Swatches("sw", "Color", ColorWhite, palette) }

	// First chip sits after the label column and the current-colour chip
	x := panelPadding + 80 + swatchSize*1.5 + 8 + (swatchSize-2) + 4
	y := panelPadding + 8

	frame(c, x, y, true, draw)
	assert.False(t, ok)
	frame(c, x, y, false, draw)
	require.True(t, ok)
	assert.Equal(t, 1, picked)
}

func TestWantsPointer(t *testing.T) {
	c := newTestContext()
	frame(c, 10, 10, false, func() {})
	assert.True(t, c.WantsPointer())

	frame(c, 400, 10, false, func() {})
	assert.False(t, c.WantsPointer())
}

func TestFromRGB(t *testing.T) {
	col := FromRGB(params.MustHex("#ff8000"))
	assert.Equal(t, float32(1), col.R)
	assert.InDelta(t, 128.0/255, col.G, 1e-6)
	assert.Zero(t, col.B)
	assert.Equal(t, float32(1), col.A)
	assert.Greater(t, ColorWhite.Luma(), ColorBlack.Luma())
}
