// Package scene turns the studio parameters into renderer state.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/asaro-studio/internal/lighting"
	"github.com/Faultbox/asaro-studio/internal/logger"
	"github.com/Faultbox/asaro-studio/internal/params"
)

// Renderer is the collaborator that draws the scene.
type Renderer interface {
	SetBackground(c params.RGB)
	SetLights(lights []lighting.Light)
	SetMaterial(base params.RGB, roughness float64)
	SetHeadRotation(rad float64)
}

// Options fixes how lights are placed and what kind they are.
type Options struct {
	Convention lighting.Convention
	Kind       lighting.Kind
	// Cutoff scales a point light's distance into its range; 0 disables falloff.
	Cutoff float64
}

// Frame is everything the renderer needs for one parameter set.
type Frame struct {
	Background   params.RGB
	Lights       []lighting.Light
	BaseColor    params.RGB
	Roughness    float64
	HeadRotation float64
}

// Derive computes the frame for a parameter set. Disabled lights are left out.
func Derive(s params.State, opts Options) Frame {
	f := Frame{
		Background:   s.Scene.Background,
		BaseColor:    s.Material.BaseColor,
		Roughness:    s.Material.Roughness,
		HeadRotation: s.Scene.HeadRotation,
	}
	for _, slot := range []params.Slot{params.Primary, params.Secondary} {
		l := s.Light(slot)
		if slot == params.Secondary && !l.Enabled {
			continue
		}
		f.Lights = append(f.Lights, place(l, opts))
	}
	return f
}

func place(l params.Light, opts Options) lighting.Light {
	pos := lighting.Place(opts.Convention, l.Orbit, l.Height, l.Distance)
	out := lighting.Light{
		Kind:      opts.Kind,
		Position:  mgl32.Vec3{float32(pos.X()), float32(pos.Y()), float32(pos.Z())},
		Color:     l.Color.Float32(),
		Intensity: float32(l.Intensity),
		Helper:    l.Helper,
	}
	if opts.Kind == lighting.Point && opts.Cutoff > 0 {
		out.Range = float32(l.Distance * opts.Cutoff)
	}
	return out
}

// Scene keeps a renderer in step with a parameter store.
type Scene struct {
	store    *params.Store
	renderer Renderer
	opts     Options
	sub      params.Subscription
	frame    Frame
	log      *zap.Logger
}

// New subscribes to store and pushes the current parameters to r.
func New(store *params.Store, r Renderer, opts Options) *Scene {
	s := &Scene{
		store:    store,
		renderer: r,
		opts:     opts,
		log:      logger.Named("scene"),
	}
	s.sub = store.Subscribe(func(params.Change, params.State) { s.Sync() })
	s.Sync()
	s.log.Info("scene ready",
		zap.String("convention", opts.Convention.Name),
		zap.Stringer("kind", opts.Kind),
	)
	return s
}

// Sync recomputes light positions from the store and pushes the whole frame.
// It runs on every parameter change; the frame is small enough that nothing
// is cached.
func (s *Scene) Sync() {
	s.frame = Derive(s.store.Snapshot(), s.opts)
	s.renderer.SetBackground(s.frame.Background)
	s.renderer.SetLights(s.frame.Lights)
	s.renderer.SetMaterial(s.frame.BaseColor, s.frame.Roughness)
	s.renderer.SetHeadRotation(s.frame.HeadRotation)
}

// Frame returns the last frame pushed to the renderer.
func (s *Scene) Frame() Frame {
	return s.frame
}

// Close stops following the store.
func (s *Scene) Close() {
	s.store.Unsubscribe(s.sub)
}
