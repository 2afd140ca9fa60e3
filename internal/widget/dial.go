package widget

import "math"

// Dial is a circular control that maps the pointer's direction from its
// center to a signed angle in degrees: 0 at the top, 90 on the right, 180 at
// the bottom and -90 on the left.
type Dial struct {
	base
	Label string
}

// NewDial creates a dial bound to value/onChange and registers it with d.
func NewDial(d *Dispatcher, label string, value func() float64, onChange func(float64)) *Dial {
	w := &Dial{base: newBase(d, value, onChange), Label: label}
	d.Register(w)
	return w
}

// PointerDown starts a drag. The press position itself is not interpreted.
func (w *Dial) PointerDown(Point) {
	if w.closed {
		return
	}
	w.session.Begin(w)
}

// PointerMove emits the angle under the pointer while dragging.
func (w *Dial) PointerMove(p Point) {
	if !w.live() {
		return
	}
	c := w.bounds.Center()
	w.emit(DialAngle(p.X-c.X, p.Y-c.Y))
}

// Close ends any drag and stops receiving presses.
func (w *Dial) Close() {
	w.base.Close()
	w.d.Unregister(w)
}

// Radius is the handle's distance from the center.
func (w *Dial) Radius() float64 {
	return (min(w.bounds.W, w.bounds.H) - 20) / 2
}

// Handle returns where the handle is drawn for the current value.
func (w *Dial) Handle() Point {
	c := w.bounds.Center()
	dx, dy := DialHandle(w.value(), w.Radius())
	return Point{c.X + dx, c.Y + dy}
}

// DialAngle converts a pointer offset from the dial center into degrees in
// (-180, 180], rounded to the nearest whole degree.
func DialAngle(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx)*180/math.Pi + 90
	deg = FoldDegrees(deg)
	deg = math.Floor(deg + 0.5)
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// FoldDegrees brings an angle from at most one turn outside into (-180, 180].
func FoldDegrees(deg float64) float64 {
	if deg > 180 {
		deg -= 360
	}
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// DialHandle returns the handle offset from the dial center for a value in
// degrees.
func DialHandle(deg, radius float64) (dx, dy float64) {
	a := deg*math.Pi/180 - math.Pi/2
	return math.Cos(a) * radius, math.Sin(a) * radius
}
