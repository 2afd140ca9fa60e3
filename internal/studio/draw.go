package studio

import (
	"fmt"
	"math"

	"github.com/Faultbox/asaro-studio/internal/engine/ui2d"
	"github.com/Faultbox/asaro-studio/internal/widget"
)

func rectOf(r ui2d.Rect) widget.Rect {
	return widget.Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// centered returns a w by h rect centered horizontally at the top of cell.
func centered(cell ui2d.Rect, w, h float32) ui2d.Rect {
	return ui2d.Rect{X: cell.X + (cell.W-w)/2, Y: cell.Y, W: w, H: h}
}

func caption(b *ui2d.Batch, cell ui2d.Rect, y float32, text string, color ui2d.Color) {
	w, _ := b.MeasureText(text, ui2d.TextScale)
	b.DrawText(cell.X+(cell.W-w)/2, y, text, ui2d.TextScale, color)
}

func drawDial(b *ui2d.Batch, d *widget.Dial, accent ui2d.Color) {
	r := d.Bounds()
	c := r.Center()
	cx, cy := float32(c.X), float32(c.Y)
	radius := float32(d.Radius())

	b.DrawCircle(cx, cy, radius+6, ui2d.ColorInputBg)
	b.DrawRing(cx, cy, radius, 2, ui2d.ColorPanelBorder)

	// Tick at 0 (top)
	b.DrawLine(cx, cy-radius-4, cx, cy-radius+4, 2, ui2d.ColorTextDim)

	h := d.Handle()
	hx, hy := float32(h.X), float32(h.Y)
	b.DrawLine(cx, cy, hx, hy, 2, accent.WithAlpha(0.6))
	handle := accent
	if d.Dragging() {
		handle = accent.Lighten(0.3)
	}
	b.DrawCircle(hx, hy, 5, handle)
	b.DrawCircle(cx, cy, 2, ui2d.ColorTextDim)
}

func drawSlider(b *ui2d.Batch, s *widget.Slider, accent ui2d.Color) {
	r := s.Bounds()
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	trackX := x + w/2 - 2

	b.DrawRect(x, y, w, h, ui2d.ColorInputBg)
	b.DrawRectOutline(x, y, w, h, 1, ui2d.ColorPanelBorder)
	b.DrawRect(trackX, y+10, 4, h-20, ui2d.ColorPanelBorder)

	hy := float32(s.HandleY())
	b.DrawRect(trackX, hy, 4, y+h-10-hy, accent.WithAlpha(0.7))

	handle := accent
	if s.Dragging() {
		handle = accent.Lighten(0.3)
	}
	b.DrawRect(x+3, hy-3, w-6, 6, handle)
}

func drawWheel(b *ui2d.Batch, wh *widget.Wheel, accent ui2d.Color) {
	r := wh.Bounds()
	c := r.Center()
	cx, cy := float32(c.X), float32(c.Y)
	radius := float32(wh.Radius())

	b.DrawCircle(cx, cy, radius, ui2d.ColorInputBg)
	b.DrawRing(cx, cy, radius, 3, ui2d.ColorPanelBorder)

	// Notches turn with the value so rotation is visible past one turn
	rot := wh.Value()
	for i := 0; i < 12; i++ {
		a := rot + float64(i)*math.Pi/6 - math.Pi/2
		ca, sa := float32(math.Cos(a)), float32(math.Sin(a))
		b.DrawLine(cx+ca*(radius-6), cy+sa*(radius-6), cx+ca*(radius-2), cy+sa*(radius-2), 1, ui2d.ColorTextDim)
	}

	p := wh.Indicator()
	color := accent
	if wh.Dragging() {
		color = accent.Lighten(0.3)
	}
	b.DrawLine(cx, cy, float32(p.X), float32(p.Y), 3, color)
	b.DrawCircle(cx, cy, 4, color)
}

func formatDegrees(v float64) string {
	return fmt.Sprintf("%.0f deg", v)
}

// formatTurns shows an accumulated rotation in degrees, including full turns.
func formatTurns(rad float64) string {
	return fmt.Sprintf("%.0f deg", rad*180/math.Pi)
}
