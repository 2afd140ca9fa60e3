package widget

import "math"

// Wheel is a relative rotation control. Each move adds the pointer's change
// in angle around the center to the bound value, so the value keeps growing
// over several turns and across drags.
type Wheel struct {
	base
	Label string

	lastAngle float64
}

// NewWheel creates a wheel bound to value/onChange and registers it with d.
func NewWheel(d *Dispatcher, label string, value func() float64, onChange func(float64)) *Wheel {
	w := &Wheel{base: newBase(d, value, onChange), Label: label}
	d.Register(w)
	return w
}

// PointerDown records the pointer angle and starts a drag.
func (w *Wheel) PointerDown(p Point) {
	if w.closed {
		return
	}
	w.lastAngle = w.angleOf(p)
	w.session.Begin(w)
}

// PointerMove adds the shortest-path angle change since the last event.
func (w *Wheel) PointerMove(p Point) {
	if !w.live() {
		return
	}
	current := w.angleOf(p)
	w.emit(w.value() + UnwrapDelta(current-w.lastAngle))
	w.lastAngle = current
}

// Close ends any drag and stops receiving presses.
func (w *Wheel) Close() {
	w.base.Close()
	w.d.Unregister(w)
}

// Radius is the rim radius.
func (w *Wheel) Radius() float64 {
	return (min(w.bounds.W, w.bounds.H) - 20) / 2
}

// Indicator returns the tip of the pointer arrow for the current value.
func (w *Wheel) Indicator() Point {
	c := w.bounds.Center()
	dx, dy := WheelIndicator(w.value(), w.Radius()-5)
	return Point{c.X + dx, c.Y + dy}
}

func (w *Wheel) angleOf(p Point) float64 {
	c := w.bounds.Center()
	return math.Atan2(p.Y-c.Y, p.X-c.X)
}

// UnwrapDelta takes a difference of two atan2 angles onto the short way
// round, across the ±π seam.
func UnwrapDelta(delta float64) float64 {
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	if delta < -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}

// WheelIndicator returns the arrow tip offset for a rotation in radians.
// Zero points up; the value needs no wrapping.
func WheelIndicator(rad, length float64) (dx, dy float64) {
	a := rad - math.Pi/2
	return math.Cos(a) * length, math.Sin(a) * length
}
