// Package studio composes the parameter store, scene binding, control panel
// and viewport camera into the lighting preview.
package studio

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/asaro-studio/internal/config"
	"github.com/Faultbox/asaro-studio/internal/engine/camera"
	"github.com/Faultbox/asaro-studio/internal/engine/input"
	"github.com/Faultbox/asaro-studio/internal/engine/ui2d"
	"github.com/Faultbox/asaro-studio/internal/lighting"
	"github.com/Faultbox/asaro-studio/internal/logger"
	"github.com/Faultbox/asaro-studio/internal/params"
	"github.com/Faultbox/asaro-studio/internal/preset"
	"github.com/Faultbox/asaro-studio/internal/scene"
	"github.com/Faultbox/asaro-studio/internal/widget"
)

// QuickPreset is the name the save key stores under.
const QuickPreset = "quick"

// Overlay placement from the bottom-right of the viewport.
const overlayMargin = 16

var mouseInstructions = []string{
	"Left drag: rotate",
	"Right drag: pan",
	"Scroll: zoom",
}

// Studio is the root of the preview: it owns the store and routes input to
// the control widgets or the viewport camera.
type Studio struct {
	cfg     *config.Config
	store   *params.Store
	scene   *scene.Scene
	presets *preset.Manager

	dispatcher *widget.Dispatcher
	panel      *Panel
	ui         *ui2d.Context
	camera     *camera.OrbitCamera
	layout     Layout

	// Viewport camera drag state
	orbiting bool
	panning  bool
	lastX    int
	lastY    int

	quit           bool
	capturePending bool
	log            *zap.Logger
}

// SceneOptions resolves the configured placement convention and light kind.
func SceneOptions(cfg *config.Config) (scene.Options, error) {
	conv, err := lighting.ConventionByName(cfg.Scene.Convention)
	if err != nil {
		return scene.Options{}, err
	}
	kind, err := lighting.KindByName(cfg.Scene.LightKind)
	if err != nil {
		return scene.Options{}, err
	}
	return scene.Options{Convention: conv, Kind: kind, Cutoff: cfg.Scene.PointCutoff}, nil
}

// New builds a studio drawing through r. The initial parameters come from
// the last saved session when there is one, otherwise from cfg.
func New(cfg *config.Config, r scene.Renderer, presets *preset.Manager, font *ui2d.Font) (*Studio, error) {
	opts, err := SceneOptions(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.Named("studio")
	initial := cfg.Lighting
	if s, ok, err := presets.Load(); err != nil {
		log.Warn("failed to load last session", zap.Error(err))
	} else if ok {
		initial = s
		log.Info("restored last session")
	}

	store := params.NewStore(initial)
	d := widget.NewDispatcher()
	cam := camera.NewOrbitCamera(cfg.Camera.FOV, cfg.Camera.Distance)
	cam.MinDistance = cfg.Camera.MinDistance
	cam.MaxDistance = cfg.Camera.MaxDistance
	cam.DragSensitivity = cfg.Camera.DragSensitivity
	cam.ZoomSensitivity = cfg.Camera.ZoomSensitivity

	s := &Studio{
		cfg:        cfg,
		store:      store,
		scene:      scene.New(store, r, opts),
		presets:    presets,
		dispatcher: d,
		panel: NewPanel(d, store, PanelOptions{
			DialSize:     cfg.Panel.DialSize,
			SliderWidth:  cfg.Panel.SliderWidth,
			SliderHeight: cfg.Panel.SliderHeight,
			Palette:      cfg.Panel.Palette,
		}),
		ui:     ui2d.NewContext(ui2d.NewBatch(font)),
		camera: cam,
		layout: Layout{Width: cfg.Window.Width, Height: cfg.Window.Height, PanelWidth: cfg.Panel.Width},
		log:    log,
	}
	return s, nil
}

// Store returns the parameter store.
func (s *Studio) Store() *params.Store {
	return s.store
}

// Scene returns the scene binding.
func (s *Studio) Scene() *scene.Scene {
	return s.scene
}

// Camera returns the viewport camera.
func (s *Studio) Camera() *camera.OrbitCamera {
	return s.camera
}

// Layout returns the current window split.
func (s *Studio) Layout() Layout {
	return s.layout
}

// Batch returns the UI geometry built by the last Frame.
func (s *Studio) Batch() *ui2d.Batch {
	return s.ui.Batch()
}

// Quit reports whether the user asked to leave.
func (s *Studio) Quit() bool {
	return s.quit
}

// TakeCapture reports whether a viewport capture was asked for since the
// last call.
func (s *Studio) TakeCapture() bool {
	pending := s.capturePending
	s.capturePending = false
	return pending
}

// Resize updates the layout for a new window size in window coordinates.
func (s *Studio) Resize(width, height int) {
	s.layout.Width = width
	s.layout.Height = height
}

// HandleEvent routes one input event.
func (s *Studio) HandleEvent(ev input.Event) {
	p := widget.Point{X: float64(ev.MouseX), Y: float64(ev.MouseY)}
	in := s.ui.Input()

	switch ev.Type {
	case input.EventQuit:
		s.quit = true

	case input.EventWindowResize:
		s.Resize(ev.Width, ev.Height)

	case input.EventMouseMove:
		in.MouseX, in.MouseY = float32(ev.MouseX), float32(ev.MouseY)
		s.dispatcher.PointerMove(p)
		dx, dy := float32(ev.MouseX-s.lastX), float32(ev.MouseY-s.lastY)
		switch {
		case s.orbiting:
			s.camera.HandleDrag(dx, dy)
		case s.panning:
			s.camera.HandlePan(dx, dy)
		}
		s.lastX, s.lastY = ev.MouseX, ev.MouseY

	case input.EventMouseDown:
		in.MouseX, in.MouseY = float32(ev.MouseX), float32(ev.MouseY)
		s.lastX, s.lastY = ev.MouseX, ev.MouseY
		switch ev.Button {
		case input.ButtonLeft:
			in.MouseLeftDown = true
			in.MouseLeftClicked = true
			if s.dispatcher.PointerDown(p) {
				return
			}
			if s.layout.InViewport(p) && !s.ui.ContainsPoint(in.MouseX, in.MouseY) {
				s.orbiting = true
			}
		case input.ButtonRight:
			if s.layout.InViewport(p) {
				s.panning = true
			}
		}

	case input.EventMouseUp:
		switch ev.Button {
		case input.ButtonLeft:
			in.MouseLeftDown = false
			s.dispatcher.PointerUp(p)
			s.orbiting = false
		case input.ButtonRight:
			s.panning = false
		}

	case input.EventMouseWheel:
		in.ScrollY += ev.WheelY
		if s.layout.InViewport(p) {
			s.camera.HandleZoom(ev.WheelY)
		}

	case input.EventFocusLost:
		s.endDrags()
		in.MouseLeftDown = false

	case input.EventKeyDown:
		if !ev.Repeat {
			s.handleKey(ev.Key)
		}
	}
}

func (s *Studio) endDrags() {
	s.dispatcher.PointerUp(widget.Point{X: float64(s.lastX), Y: float64(s.lastY)})
	s.orbiting = false
	s.panning = false
}

func (s *Studio) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		s.quit = true
	case sdl.SCANCODE_R:
		s.endDrags()
		s.store.Replace(s.cfg.Lighting)
		s.camera.Reset()
		s.log.Info("parameters reset")
	case sdl.SCANCODE_S:
		if err := s.presets.SaveNamed(QuickPreset, s.store.Snapshot()); err != nil {
			s.log.Error("failed to save preset", zap.Error(err))
			return
		}
		s.log.Info("preset saved", zap.String("name", QuickPreset))
	case sdl.SCANCODE_L:
		st, ok, err := s.presets.LoadNamed(QuickPreset)
		if err != nil {
			s.log.Error("failed to load preset", zap.Error(err))
			return
		}
		if ok {
			s.endDrags()
			s.store.Replace(st)
			s.log.Info("preset loaded", zap.String("name", QuickPreset))
		}
	case sdl.SCANCODE_P:
		s.capturePending = true
	case sdl.SCANCODE_D:
		if logger.Level() == "debug" {
			logger.SetLevel(s.cfg.Logging.Level)
		} else {
			logger.SetLevel("debug")
		}
		s.log.Info("log level changed", zap.String("level", logger.Level()))
	case sdl.SCANCODE_H:
		l := s.store.Snapshot().Light(params.Primary)
		s.store.SetLightHelper(params.Primary, !l.Helper)
	}
}

// Frame lays out the panel and overlay for the next draw. Widget bounds
// placed here are used to hit test the following frame's input.
func (s *Studio) Frame() {
	s.ui.Begin()

	pa := s.layout.Panel()
	s.panel.Layout(s.ui, ui2d.Rect{X: float32(pa.X), Y: float32(pa.Y), W: float32(pa.W), H: float32(pa.H)})

	vp := s.layout.Viewport()
	s.ui.Overlay(float32(vp.X+vp.W)-overlayMargin, float32(vp.Y+vp.H)-overlayMargin, mouseInstructions)

	s.ui.End()
}

// Close saves the session and releases everything the studio created.
func (s *Studio) Close() {
	if err := s.presets.Save(s.store.Snapshot()); err != nil {
		s.log.Warn("failed to save session", zap.Error(err))
	}
	s.panel.Close()
	s.dispatcher.Close()
	s.scene.Close()
}
