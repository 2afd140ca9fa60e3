package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/asaro-studio/internal/config"
	"github.com/Faultbox/asaro-studio/internal/engine/input"
	"github.com/Faultbox/asaro-studio/internal/engine/ui2d"
	"github.com/Faultbox/asaro-studio/internal/lighting"
	"github.com/Faultbox/asaro-studio/internal/logger"
	"github.com/Faultbox/asaro-studio/internal/params"
	"github.com/Faultbox/asaro-studio/internal/preset"
	"github.com/Faultbox/asaro-studio/internal/widget"
)

type fakeRenderer struct {
	pushes     int
	background params.RGB
	lights     []lighting.Light
	rotation   float64
	roughness  float64
}

func (f *fakeRenderer) SetBackground(c params.RGB) {
	f.pushes++
	f.background = c
}

func (f *fakeRenderer) SetLights(l []lighting.Light) { f.lights = l }

func (f *fakeRenderer) SetMaterial(_ params.RGB, roughness float64) { f.roughness = roughness }

func (f *fakeRenderer) SetHeadRotation(rad float64) { f.rotation = rad }

func newTestStudio(t *testing.T) (*Studio, *fakeRenderer) {
	t.Helper()
	r := &fakeRenderer{}
	s, err := New(config.Default(), r, preset.NewMemory(), ui2d.NewFont())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, r
}

func press(s *Studio, button uint8, p widget.Point) {
	s.HandleEvent(input.Event{Type: input.EventMouseDown, Button: button, MouseX: int(p.X), MouseY: int(p.Y)})
}

func move(s *Studio, p widget.Point) {
	s.HandleEvent(input.Event{Type: input.EventMouseMove, MouseX: int(p.X), MouseY: int(p.Y)})
}

func release(s *Studio, button uint8, p widget.Point) {
	s.HandleEvent(input.Event{Type: input.EventMouseUp, Button: button, MouseX: int(p.X), MouseY: int(p.Y)})
}

func openSection(s *Studio, id string) {
	s.ui.SetSectionOpen(panelID, id, true)
	s.Frame()
}

func TestNewPushesConfiguredLighting(t *testing.T) {
	s, r := newTestStudio(t)

	assert.Equal(t, config.Default().Lighting, s.Store().Snapshot())
	require.Len(t, r.lights, 1, "secondary light starts disabled")
	assert.InDelta(t, 40, r.lights[0].Position.Z(), 1e-4)
	assert.Equal(t, params.MustHex("#222222"), r.background)
}

func TestNewRejectsUnknownConvention(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Convention = "sideways"
	_, err := New(cfg, &fakeRenderer{}, preset.NewMemory(), nil)
	assert.Error(t, err)
}

func TestCollapsedSectionsHideWidgets(t *testing.T) {
	s, _ := newTestStudio(t)
	s.Frame()

	for _, lc := range s.panel.lights {
		assert.True(t, lc.orbit.Bounds().Empty())
		assert.True(t, lc.height.Bounds().Empty())
		assert.True(t, lc.intensity.Bounds().Empty())
	}
	assert.True(t, s.panel.head.Bounds().Empty())

	pa := s.Layout().Panel()
	press(s, input.ButtonLeft, widget.Point{X: pa.X + pa.W/2, Y: pa.H / 2})
	assert.False(t, s.dispatcher.Dragging())
}

func TestOrbitDialDrag(t *testing.T) {
	s, r := newTestStudio(t)
	openSection(s, sectionPrimary)

	dial := s.panel.lights[params.Primary].orbit
	require.False(t, dial.Bounds().Empty())
	c := dial.Bounds().Center()

	press(s, input.ButtonLeft, c)
	require.True(t, s.dispatcher.Dragging())

	// Far right of center is a quarter turn
	move(s, widget.Point{X: c.X + 1000, Y: c.Y})
	assert.Equal(t, 90.0, s.Store().Snapshot().Primary.Orbit)
	assert.InDelta(t, -40, r.lights[0].Position.X(), 1e-4)

	// Moves keep tracking outside the dial while the drag lasts
	move(s, widget.Point{X: c.X, Y: c.Y + 1000})
	assert.Equal(t, 180.0, s.Store().Snapshot().Primary.Orbit)

	release(s, input.ButtonLeft, c)
	assert.False(t, s.dispatcher.Dragging())

	move(s, widget.Point{X: c.X - 25, Y: c.Y})
	assert.Equal(t, 180.0, s.Store().Snapshot().Primary.Orbit)
}

func TestIntensitySliderScales(t *testing.T) {
	s, _ := newTestStudio(t)
	openSection(s, sectionPrimary)

	sl := s.panel.lights[params.Primary].intensity
	b := sl.Bounds()
	require.False(t, b.Empty())
	assert.InDelta(t, 0.2, sl.Value(), 1e-9)

	press(s, input.ButtonLeft, b.Center())
	move(s, widget.Point{X: b.Center().X, Y: b.Y - 50})
	release(s, input.ButtonLeft, b.Center())

	assert.Equal(t, 10.0, s.Store().Snapshot().Primary.Intensity)
}

func TestSecondaryControlsNeedEnable(t *testing.T) {
	s, r := newTestStudio(t)
	openSection(s, sectionSecondary)

	lc := s.panel.lights[params.Secondary]
	assert.True(t, lc.orbit.Bounds().Empty())

	s.store.SetLightEnabled(params.Secondary, true)
	s.Frame()
	assert.False(t, lc.orbit.Bounds().Empty())
	assert.Len(t, r.lights, 2)
}

func TestHeadWheelRotates(t *testing.T) {
	s, r := newTestStudio(t)
	openSection(s, sectionHead)

	wh := s.panel.head
	require.False(t, wh.Bounds().Empty())
	c := wh.Bounds().Center()

	press(s, input.ButtonLeft, widget.Point{X: c.X, Y: c.Y - 20})
	move(s, widget.Point{X: c.X + 20, Y: c.Y})
	release(s, input.ButtonLeft, widget.Point{X: c.X + 20, Y: c.Y})

	assert.NotZero(t, s.Store().Snapshot().Scene.HeadRotation)
	assert.Equal(t, s.Store().Snapshot().Scene.HeadRotation, r.rotation)
}

func TestViewportCamera(t *testing.T) {
	s, _ := newTestStudio(t)
	s.Frame()
	cam := s.Camera()
	yaw, dist := cam.Yaw, cam.Distance

	press(s, input.ButtonLeft, widget.Point{X: 100, Y: 100})
	move(s, widget.Point{X: 150, Y: 100})
	release(s, input.ButtonLeft, widget.Point{X: 150, Y: 100})
	assert.Less(t, cam.Yaw, yaw)

	target := cam.Target
	press(s, input.ButtonRight, widget.Point{X: 100, Y: 100})
	move(s, widget.Point{X: 140, Y: 120})
	release(s, input.ButtonRight, widget.Point{X: 140, Y: 120})
	assert.NotEqual(t, target, cam.Target)

	s.HandleEvent(input.Event{Type: input.EventMouseWheel, WheelY: 1, MouseX: 100, MouseY: 100})
	assert.Less(t, cam.Distance, dist)

	// Scrolling over the panel leaves the camera alone
	d := cam.Distance
	s.HandleEvent(input.Event{Type: input.EventMouseWheel, WheelY: 1, MouseX: 1200, MouseY: 100})
	assert.Equal(t, d, cam.Distance)
}

func TestFocusLostEndsDrags(t *testing.T) {
	s, _ := newTestStudio(t)
	openSection(s, sectionPrimary)

	c := s.panel.lights[params.Primary].orbit.Bounds().Center()
	press(s, input.ButtonLeft, c)
	require.True(t, s.dispatcher.Dragging())

	s.HandleEvent(input.Event{Type: input.EventFocusLost})
	assert.False(t, s.dispatcher.Dragging())

	before := s.Camera().Yaw
	move(s, widget.Point{X: 10, Y: 10})
	assert.Equal(t, before, s.Camera().Yaw)
}

func TestKeys(t *testing.T) {
	s, _ := newTestStudio(t)

	s.store.SetLightOrbit(params.Primary, 45)
	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_R})
	assert.Equal(t, config.Default().Lighting, s.Store().Snapshot())

	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_H})
	assert.True(t, s.Store().Snapshot().Primary.Helper)

	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_H, Repeat: true})
	assert.True(t, s.Store().Snapshot().Primary.Helper)

	assert.False(t, s.TakeCapture())
	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_P})
	assert.True(t, s.TakeCapture())
	assert.False(t, s.TakeCapture())

	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_D})
	assert.Equal(t, "debug", logger.Level())
	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_D})
	assert.Equal(t, "info", logger.Level())

	assert.False(t, s.Quit())
	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_ESCAPE})
	assert.True(t, s.Quit())
}

func TestQuickPresetKeys(t *testing.T) {
	s, r := newTestStudio(t)
	openSection(s, sectionPrimary)

	s.store.SetLightOrbit(params.Primary, 30)
	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_S})
	saved := s.Store().Snapshot()

	c := s.panel.lights[params.Primary].orbit.Bounds().Center()
	press(s, input.ButtonLeft, c)
	require.True(t, s.dispatcher.Dragging())
	s.store.SetLightOrbit(params.Primary, -60)

	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_L})
	assert.False(t, s.dispatcher.Dragging())
	assert.Equal(t, saved, s.Store().Snapshot())
	assert.InDelta(t, -20, r.lights[0].Position.X(), 1e-4)

	// The ended drag no longer writes
	move(s, widget.Point{X: c.X + 1000, Y: c.Y})
	assert.Equal(t, 30.0, s.Store().Snapshot().Primary.Orbit)
}

func TestLoadWithoutSavedPresetKeepsState(t *testing.T) {
	s, _ := newTestStudio(t)

	s.store.SetLightOrbit(params.Primary, 45)
	s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_L})
	assert.Equal(t, 45.0, s.Store().Snapshot().Primary.Orbit)
}

func TestResizeMovesPanel(t *testing.T) {
	s, _ := newTestStudio(t)
	s.HandleEvent(input.Event{Type: input.EventWindowResize, Width: 1000, Height: 600})

	l := s.Layout()
	assert.Equal(t, 680.0, l.Viewport().W)
	assert.Equal(t, 680.0, l.Panel().X)
	assert.Equal(t, int32(1360), l.GLViewport(2000, 1200).W)
}

func TestCloseStopsRendering(t *testing.T) {
	r := &fakeRenderer{}
	s, err := New(config.Default(), r, preset.NewMemory(), ui2d.NewFont())
	require.NoError(t, err)
	s.Close()

	pushes := r.pushes
	s.store.SetBackground(params.MustHex("#ffffff"))
	assert.Equal(t, pushes, r.pushes)
	assert.Zero(t, s.store.Subscribers())
}
