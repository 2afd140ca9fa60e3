package studio

import (
	"github.com/Faultbox/asaro-studio/internal/engine/renderer"
	"github.com/Faultbox/asaro-studio/internal/widget"
)

// Layout splits the window into the 3D viewport on the left and the control
// panel on the right. Sizes are in window coordinates.
type Layout struct {
	Width      int
	Height     int
	PanelWidth int
}

// panelWidth clamps the panel so the viewport keeps at least one column.
func (l Layout) panelWidth() int {
	return max(min(l.PanelWidth, l.Width-1), 0)
}

// Viewport returns the viewport area.
func (l Layout) Viewport() widget.Rect {
	return widget.Rect{W: float64(l.Width - l.panelWidth()), H: float64(l.Height)}
}

// Panel returns the panel area.
func (l Layout) Panel() widget.Rect {
	pw := l.panelWidth()
	return widget.Rect{X: float64(l.Width - pw), W: float64(pw), H: float64(l.Height)}
}

// InViewport reports whether p falls on the 3D view.
func (l Layout) InViewport(p widget.Point) bool {
	return l.Viewport().Contains(p)
}

// GLViewport converts the viewport to drawable pixels with GL's bottom-left
// origin. drawW and drawH are the framebuffer size.
func (l Layout) GLViewport(drawW, drawH int) renderer.Viewport {
	if l.Width <= 0 || l.Height <= 0 {
		return renderer.Viewport{}
	}
	sx := float64(drawW) / float64(l.Width)
	v := l.Viewport()
	return renderer.Viewport{
		X: 0,
		Y: 0,
		W: int32(v.W * sx),
		H: int32(drawH),
	}
}
