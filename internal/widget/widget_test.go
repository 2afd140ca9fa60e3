package widget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binding stands in for the parameter store.
type binding struct {
	v       float64
	emitted []float64
}

func (b *binding) get() float64 { return b.v }

func (b *binding) set(v float64) {
	b.v = v
	b.emitted = append(b.emitted, v)
}

var square = Rect{X: 100, Y: 200, W: 60, H: 60} // center (130, 230)

func at(r Rect, dx, dy float64) Point {
	c := r.Center()
	return Point{c.X + dx, c.Y + dy}
}

func TestDialAngle(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{"up", 0, -20, 0},
		{"right", 20, 0, 90},
		{"down", 0, 20, 180},
		{"left", -20, 0, -90},
		{"up-right", 20, -20, 45},
		{"up-left", -20, -20, -45},
		{"down-left", -20, 20, -135},
		{"just left of down", -0.01, 20, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DialAngle(tt.dx, tt.dy)
			assert.Equal(t, tt.want, got)
			assert.True(t, got > -180 && got <= 180, "got %v", got)
		})
	}
}

func TestFoldDegrees(t *testing.T) {
	assert.Equal(t, -160.0, FoldDegrees(200))
	assert.Equal(t, 180.0, FoldDegrees(180))
	assert.Equal(t, 180.0, FoldDegrees(-180))
	assert.Equal(t, 170.0, FoldDegrees(-190))
	assert.Equal(t, 45.0, FoldDegrees(45))
}

func TestDialHandleInvertsAngle(t *testing.T) {
	for _, deg := range []float64{0, 30, 90, 135, 180, -45, -90, -179} {
		dx, dy := DialHandle(deg, 20)
		assert.Equal(t, deg, DialAngle(dx, dy), "deg=%v", deg)
	}
	dx, dy := DialHandle(0, 20)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, -20, dy, 1e-9, "zero is drawn at the top")
}

func TestDialDrag(t *testing.T) {
	d := NewDispatcher()
	b := &binding{}
	dial := NewDial(d, "Orbit", b.get, b.set)
	dial.SetBounds(square)

	// Moves before a press are ignored.
	d.PointerMove(at(square, 20, 0))
	assert.Empty(t, b.emitted)

	require.True(t, d.PointerDown(at(square, 0, -5)))
	assert.True(t, dial.Dragging())
	assert.Empty(t, b.emitted, "press does not emit")
	assert.Equal(t, 1, d.Listeners())

	// Moves outside the widget still count while dragging.
	d.PointerMove(at(square, 200, 0))
	d.PointerMove(at(square, 0, 300))
	d.PointerMove(at(square, -1, -1))
	assert.Equal(t, []float64{90, 180, -45}, b.emitted)

	d.PointerUp(at(square, 500, 500))
	assert.False(t, dial.Dragging())
	assert.Zero(t, d.Listeners())

	d.PointerMove(at(square, 20, 0))
	assert.Len(t, b.emitted, 3)

	h := dial.Handle()
	c := square.Center()
	assert.InDelta(t, c.X-dial.Radius()*math.Sqrt2/2, h.X, 1e-9)
	assert.InDelta(t, c.Y-dial.Radius()*math.Sqrt2/2, h.Y, 1e-9)
}

func TestPressOutsideWidget(t *testing.T) {
	d := NewDispatcher()
	b := &binding{}
	dial := NewDial(d, "Orbit", b.get, b.set)
	dial.SetBounds(square)

	assert.False(t, d.PointerDown(Point{0, 0}))
	assert.False(t, dial.Dragging())
	assert.False(t, d.Dragging())

	// Hidden widgets cannot be pressed.
	dial.SetBounds(Rect{})
	assert.False(t, d.PointerDown(Point{0, 0}))
}

func TestSliderValue(t *testing.T) {
	const h = 60
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"track top", 10, 1},
		{"widget top", 0, 1},
		{"far above", -500, 1},
		{"track bottom", 50, 0},
		{"widget bottom", 60, 0},
		{"far below", 900, 0},
		{"middle", 30, 0.5},
		{"quarter", 40, 0.25},
		{"rounded", 23.3, 0.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SliderValue(tt.y, h))
		})
	}

	assert.Equal(t, 0.0, SliderValue(5, 10), "degenerate track")
}

func TestSliderHandleY(t *testing.T) {
	assert.Equal(t, 10.0, SliderHandleY(1, 60))
	assert.Equal(t, 50.0, SliderHandleY(0, 60))
	for _, v := range []float64{0, 0.13, 0.5, 0.87, 1} {
		assert.Equal(t, v, SliderValue(SliderHandleY(v, 60), 60))
	}
}

func TestSliderDrag(t *testing.T) {
	d := NewDispatcher()
	b := &binding{v: 0.5}
	s := NewSlider(d, "Height", b.get, b.set)
	track := Rect{X: 10, Y: 100, W: 30, H: 60}
	s.SetBounds(track)

	require.True(t, d.PointerDown(Point{20, 130}))
	d.PointerMove(Point{20, 110})
	d.PointerMove(Point{20, 50})
	d.PointerMove(Point{400, 1000})
	d.PointerUp(Point{400, 1000})

	assert.Equal(t, []float64{1, 1, 0}, b.emitted)
	assert.Equal(t, 150.0, s.HandleY())
}

func TestWheelAccumulatesAcrossSessions(t *testing.T) {
	d := NewDispatcher()
	b := &binding{}
	w := NewWheel(d, "Rotation", b.get, b.set)
	w.SetBounds(square)

	const r = 25
	point := func(deg float64) Point {
		a := deg * math.Pi / 180
		return at(square, r*math.Cos(a), r*math.Sin(a))
	}
	drag := func(fromDeg, toDeg float64) {
		require.True(t, d.PointerDown(point(fromDeg)))
		for deg := fromDeg + 10; deg <= toDeg+1e-9; deg += 10 {
			d.PointerMove(point(deg))
		}
		d.PointerUp(point(toDeg))
	}

	drag(0, 170)
	assert.InDelta(t, 170*math.Pi/180, b.v, 1e-9)

	// The second drag crosses the ±180° seam of atan2.
	drag(170, 340)
	assert.InDelta(t, 340*math.Pi/180, b.v, 1e-9)

	for i := 1; i < len(b.emitted); i++ {
		step := b.emitted[i] - b.emitted[i-1]
		assert.InDelta(t, 10*math.Pi/180, step, 1e-9, "step %d", i)
	}
	assert.Zero(t, d.Listeners())
}

func TestWheelMultipleTurns(t *testing.T) {
	d := NewDispatcher()
	b := &binding{}
	w := NewWheel(d, "Rotation", b.get, b.set)
	w.SetBounds(square)

	point := func(deg float64) Point {
		a := deg * math.Pi / 180
		return at(square, 20*math.Cos(a), 20*math.Sin(a))
	}
	d.PointerDown(point(0))
	for deg := -30.0; deg >= -3*360; deg -= 30 {
		d.PointerMove(point(deg))
	}
	d.PointerUp(point(0))

	assert.InDelta(t, -6*math.Pi, b.v, 1e-9)
}

func TestUnwrapDelta(t *testing.T) {
	assert.InDelta(t, -0.2, UnwrapDelta(2*math.Pi-0.2), 1e-12)
	assert.InDelta(t, 0.2, UnwrapDelta(-2*math.Pi+0.2), 1e-12)
	assert.Equal(t, 1.0, UnwrapDelta(1))
}

func TestWheelIndicator(t *testing.T) {
	dx, dy := WheelIndicator(0, 10)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, -10, dy, 1e-9)

	// Whole turns land on the same spot.
	dx2, dy2 := WheelIndicator(4*math.Pi, 10)
	assert.InDelta(t, dx, dx2, 1e-9)
	assert.InDelta(t, dy, dy2, 1e-9)

	dx, dy = WheelIndicator(math.Pi/2, 10)
	assert.InDelta(t, 10, dx, 1e-9)
	assert.InDelta(t, 0, dy, 1e-9)
}

func TestCloseDuringDrag(t *testing.T) {
	d := NewDispatcher()
	b := &binding{}
	dial := NewDial(d, "Orbit", b.get, b.set)
	dial.SetBounds(square)
	wheel := NewWheel(d, "Rotation", b.get, b.set)
	wheel.SetBounds(Rect{X: 300, Y: 300, W: 80, H: 80})

	d.PointerDown(at(square, 0, 0))
	require.Equal(t, 1, d.Listeners())

	dial.Close()
	assert.Zero(t, d.Listeners(), "teardown releases the listener")
	assert.False(t, dial.Dragging())

	// Late events after teardown are no-ops.
	dial.PointerMove(at(square, 10, 0))
	dial.PointerDown(at(square, 0, 0))
	assert.False(t, d.PointerDown(at(square, 0, 0)))
	assert.Empty(t, b.emitted)
	dial.Close()

	d.PointerDown(Point{340, 340})
	require.True(t, wheel.Dragging())
	d.Close()
	assert.False(t, wheel.Dragging())
	assert.Zero(t, d.Listeners())
}

func TestCollapsedWidgetIgnoresMoves(t *testing.T) {
	d := NewDispatcher()
	b := &binding{}
	s := NewSlider(d, "Height", b.get, b.set)
	s.SetBounds(Rect{X: 0, Y: 0, W: 30, H: 60})

	d.PointerDown(Point{10, 30})
	s.SetBounds(Rect{})
	d.PointerMove(Point{10, 10})
	assert.Empty(t, b.emitted)

	d.PointerUp(Point{10, 10})
	assert.Zero(t, d.Listeners())
}

func TestSessionsAreIndependent(t *testing.T) {
	d := NewDispatcher()
	db, sb := &binding{}, &binding{}
	dial := NewDial(d, "Orbit", db.get, db.set)
	dial.SetBounds(square)
	slider := NewSlider(d, "Height", sb.get, sb.set)
	slider.SetBounds(Rect{X: 400, Y: 0, W: 30, H: 60})

	d.PointerDown(at(square, 0, 0))
	d.PointerMove(at(square, 20, 0))
	assert.False(t, slider.Dragging())
	assert.Empty(t, sb.emitted)
	assert.Equal(t, []float64{90}, db.emitted)
	d.PointerUp(Point{})
}

func TestSubscriptionRelease(t *testing.T) {
	d := NewDispatcher()
	var sub *Subscription
	sub.Release() // nil is fine

	b := &binding{}
	dial := NewDial(d, "Orbit", b.get, b.set)
	sub = d.Listen(dial)
	require.Equal(t, 1, d.Listeners())
	sub.Release()
	sub.Release()
	assert.Zero(t, d.Listeners())
}
