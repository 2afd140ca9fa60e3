// Package widget implements the studio's drag controls: an orbit dial, a
// vertical slider and a rotation wheel.
//
// Widgets never touch the parameter store. Each one reads its current value
// through a getter and reports new values through a single change callback.
package widget

// Point is a pointer position in window coordinates (y grows downwards).
type Point struct {
	X, Y float64
}

// Rect is a widget's screen area.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Listener receives pointer events anywhere in the window.
type Listener interface {
	PointerMove(p Point)
	PointerUp(p Point)
}

// Widget is a control that can start a drag when pressed.
type Widget interface {
	Bounds() Rect
	PointerDown(p Point)
	Close()
}

// Dispatcher routes pointer events. Presses go to the widget under the
// pointer; moves and releases go to every global listener.
type Dispatcher struct {
	widgets   []Widget
	listeners []*Subscription
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a widget to press routing.
func (d *Dispatcher) Register(w Widget) {
	d.widgets = append(d.widgets, w)
}

// Unregister removes a widget from press routing.
func (d *Dispatcher) Unregister(w Widget) {
	for i, existing := range d.widgets {
		if existing == w {
			d.widgets = append(d.widgets[:i:i], d.widgets[i+1:]...)
			return
		}
	}
}

// Listen attaches a global listener until the returned subscription is
// released.
func (d *Dispatcher) Listen(l Listener) *Subscription {
	sub := &Subscription{d: d, l: l}
	d.listeners = append(d.listeners, sub)
	return sub
}

// Listeners returns the number of attached global listeners.
func (d *Dispatcher) Listeners() int {
	return len(d.listeners)
}

// PointerDown hands the press to the topmost widget containing p.
// Returns true if a widget took it.
func (d *Dispatcher) PointerDown(p Point) bool {
	for i := len(d.widgets) - 1; i >= 0; i-- {
		w := d.widgets[i]
		if w.Bounds().Contains(p) {
			w.PointerDown(p)
			return true
		}
	}
	return false
}

// PointerMove forwards a move to all global listeners.
func (d *Dispatcher) PointerMove(p Point) {
	for _, sub := range d.snapshot() {
		if !sub.released {
			sub.l.PointerMove(p)
		}
	}
}

// PointerUp forwards a release to all global listeners.
func (d *Dispatcher) PointerUp(p Point) {
	for _, sub := range d.snapshot() {
		if !sub.released {
			sub.l.PointerUp(p)
		}
	}
}

// Dragging reports whether any drag session is holding a listener.
func (d *Dispatcher) Dragging() bool {
	return len(d.listeners) > 0
}

// Close tears down every registered widget, ending their drags.
func (d *Dispatcher) Close() {
	for _, w := range append([]Widget(nil), d.widgets...) {
		w.Close()
	}
	d.widgets = nil
}

// snapshot copies the listener list so listeners can release themselves
// while an event is being delivered.
func (d *Dispatcher) snapshot() []*Subscription {
	return append([]*Subscription(nil), d.listeners...)
}

func (d *Dispatcher) remove(sub *Subscription) {
	for i, existing := range d.listeners {
		if existing == sub {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Subscription is a global listener attachment.
type Subscription struct {
	d        *Dispatcher
	l        Listener
	released bool
}

// Release detaches the listener. Safe to call more than once and on nil.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.d.remove(s)
}

// Session is a widget's drag session: it holds the global listener from
// press until release or teardown.
type Session struct {
	d   *Dispatcher
	sub *Subscription
}

// Begin starts the session and attaches l. Does nothing if already active.
func (s *Session) Begin(l Listener) {
	if s.sub != nil || s.d == nil {
		return
	}
	s.sub = s.d.Listen(l)
}

// End releases the global listener.
func (s *Session) End() {
	s.sub.Release()
	s.sub = nil
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool {
	return s.sub != nil
}

// base carries what every widget shares: bounds, binding and drag session.
type base struct {
	d        *Dispatcher
	bounds   Rect
	value    func() float64
	onChange func(float64)
	session  Session
	closed   bool
}

func newBase(d *Dispatcher, value func() float64, onChange func(float64)) base {
	return base{
		d:        d,
		value:    value,
		onChange: onChange,
		session:  Session{d: d},
	}
}

// Bounds returns the widget's screen area.
func (b *base) Bounds() Rect {
	return b.bounds
}

// SetBounds places the widget. An empty rect hides it from presses.
func (b *base) SetBounds(r Rect) {
	b.bounds = r
}

// Value returns the bound value.
func (b *base) Value() float64 {
	return b.value()
}

// Dragging reports whether the widget holds an active drag session.
func (b *base) Dragging() bool {
	return b.session.Active()
}

// PointerUp ends the drag.
func (b *base) PointerUp(Point) {
	b.session.End()
}

// live reports whether move events should still be interpreted.
func (b *base) live() bool {
	return !b.closed && b.session.Active() && !b.bounds.Empty()
}

// Close ends any drag and detaches the widget from its dispatcher.
func (b *base) Close() {
	if b.closed {
		return
	}
	b.session.End()
	b.closed = true
}

func (b *base) emit(v float64) {
	if b.onChange != nil {
		b.onChange(v)
	}
}
