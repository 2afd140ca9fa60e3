package widget

import "math"

// trackInset is the dead band at each end of the slider track, in pixels.
const trackInset = 10

// Slider is a vertical control over [0,1]: the top of the track is 1 and the
// bottom is 0.
type Slider struct {
	base
	Label string
}

// NewSlider creates a slider bound to value/onChange and registers it with d.
func NewSlider(d *Dispatcher, label string, value func() float64, onChange func(float64)) *Slider {
	w := &Slider{base: newBase(d, value, onChange), Label: label}
	d.Register(w)
	return w
}

// PointerDown starts a drag.
func (w *Slider) PointerDown(Point) {
	if w.closed {
		return
	}
	w.session.Begin(w)
}

// PointerMove emits the value under the pointer while dragging.
func (w *Slider) PointerMove(p Point) {
	if !w.live() {
		return
	}
	w.emit(SliderValue(p.Y-w.bounds.Y, w.bounds.H))
}

// Close ends any drag and stops receiving presses.
func (w *Slider) Close() {
	w.base.Close()
	w.d.Unregister(w)
}

// HandleY returns the handle's screen y for the current value.
func (w *Slider) HandleY() float64 {
	return w.bounds.Y + SliderHandleY(w.value(), w.bounds.H)
}

// SliderValue maps a y offset from the top of a track of the given height to
// a value in [0,1], rounded to two decimals. Offsets past either end clamp.
func SliderValue(y, trackHeight float64) float64 {
	span := trackHeight - 2*trackInset
	if span <= 0 {
		return 0
	}
	v := 1 - (y-trackInset)/span
	v = min(max(v, 0), 1)
	return math.Round(v*100) / 100
}

// SliderHandleY maps a value back to a y offset from the top of the track.
func SliderHandleY(value, trackHeight float64) float64 {
	return (1-value)*(trackHeight-2*trackInset) + trackInset
}
