package params

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/asaro-studio/internal/logger"
)

// Field identifies which parameter a change touched.
type Field int

const (
	FieldAll Field = iota
	FieldEnabled
	FieldColor
	FieldOrbit
	FieldHeight
	FieldIntensity
	FieldDistance
	FieldHelper
	FieldBaseColor
	FieldRoughness
	FieldHeadRotation
	FieldBackground
)

var fieldNames = [...]string{
	FieldAll:          "all",
	FieldEnabled:      "enabled",
	FieldColor:        "color",
	FieldOrbit:        "orbit",
	FieldHeight:       "height",
	FieldIntensity:    "intensity",
	FieldDistance:     "distance",
	FieldHelper:       "helper",
	FieldBaseColor:    "base_color",
	FieldRoughness:    "roughness",
	FieldHeadRotation: "head_rotation",
	FieldBackground:   "background",
}

// String returns the field name.
func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Change describes one store mutation. Slot is only meaningful for light fields.
type Change struct {
	Slot  Slot
	Field Field
}

// Listener is called synchronously after every change.
type Listener func(c Change, s State)

// Subscription identifies a registered listener.
type Subscription struct {
	ID uuid.UUID
}

type subscriber struct {
	id uuid.UUID
	fn Listener
}

// Store owns the studio parameters. It is not safe for concurrent use; all
// access happens on the UI thread.
type Store struct {
	state State
	subs  []subscriber
}

// NewStore creates a store holding the sanitized initial state.
func NewStore(initial State) *Store {
	return &Store{state: initial.Sanitize()}
}

// Snapshot returns a copy of the current parameters.
func (s *Store) Snapshot() State {
	return s.state
}

// Subscribe registers fn for change notifications.
func (s *Store) Subscribe(fn Listener) Subscription {
	sub := subscriber{id: uuid.New(), fn: fn}
	s.subs = append(s.subs, sub)
	return Subscription{ID: sub.id}
}

// Unsubscribe removes a listener. Unknown subscriptions are ignored.
func (s *Store) Unsubscribe(sub Subscription) {
	for i, existing := range s.subs {
		if existing.id == sub.ID {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of registered listeners.
func (s *Store) Subscribers() int {
	return len(s.subs)
}

// Replace swaps in a whole parameter set, e.g. a loaded preset.
func (s *Store) Replace(state State) {
	s.state = state.Sanitize()
	s.notify(Change{Field: FieldAll})
}

func (s *Store) notify(c Change) {
	logger.Debug("parameter changed",
		zap.Stringer("slot", c.Slot),
		zap.Stringer("field", c.Field),
	)
	// Listeners may unsubscribe while being notified.
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(c, s.state)
	}
}

// SetLightEnabled gates the secondary light. The primary light is always on.
func (s *Store) SetLightEnabled(slot Slot, enabled bool) {
	l := s.state.light(slot)
	if slot == Primary || l.Enabled == enabled {
		return
	}
	l.Enabled = enabled
	s.notify(Change{slot, FieldEnabled})
}

// SetLightColor sets a light's color.
func (s *Store) SetLightColor(slot Slot, c RGB) {
	l := s.state.light(slot)
	if l.Color == c {
		return
	}
	l.Color = c
	s.notify(Change{slot, FieldColor})
}

// SetLightOrbit sets a light's orbit angle in degrees.
func (s *Store) SetLightOrbit(slot Slot, deg float64) {
	l := s.state.light(slot)
	if l.Orbit == deg {
		return
	}
	l.Orbit = deg
	s.notify(Change{slot, FieldOrbit})
}

// SetLightHeight sets a light's height fraction, clamped to [0,1].
func (s *Store) SetLightHeight(slot Slot, h float64) {
	l := s.state.light(slot)
	h = clamp01(h)
	if l.Height == h {
		return
	}
	l.Height = h
	s.notify(Change{slot, FieldHeight})
}

// SetLightIntensity sets a light's intensity. Negative values clamp to zero.
func (s *Store) SetLightIntensity(slot Slot, v float64) {
	l := s.state.light(slot)
	v = max(v, 0)
	if l.Intensity == v {
		return
	}
	l.Intensity = v
	s.notify(Change{slot, FieldIntensity})
}

// SetLightDistance sets a light's distance. Non-positive values are ignored.
func (s *Store) SetLightDistance(slot Slot, d float64) {
	l := s.state.light(slot)
	if d <= 0 || l.Distance == d {
		return
	}
	l.Distance = d
	s.notify(Change{slot, FieldDistance})
}

// SetLightHelper toggles a light's helper gizmo.
func (s *Store) SetLightHelper(slot Slot, visible bool) {
	l := s.state.light(slot)
	if l.Helper == visible {
		return
	}
	l.Helper = visible
	s.notify(Change{slot, FieldHelper})
}

// SetMaterialBaseColor sets the subject's base color.
func (s *Store) SetMaterialBaseColor(c RGB) {
	if s.state.Material.BaseColor == c {
		return
	}
	s.state.Material.BaseColor = c
	s.notify(Change{Field: FieldBaseColor})
}

// SetMaterialRoughness sets the subject's roughness, clamped to [0,1].
func (s *Store) SetMaterialRoughness(r float64) {
	r = clamp01(r)
	if s.state.Material.Roughness == r {
		return
	}
	s.state.Material.Roughness = r
	s.notify(Change{Field: FieldRoughness})
}

// SetHeadRotation sets the subject's rotation in radians. The value is not
// wrapped.
func (s *Store) SetHeadRotation(rad float64) {
	if s.state.Scene.HeadRotation == rad {
		return
	}
	s.state.Scene.HeadRotation = rad
	s.notify(Change{Field: FieldHeadRotation})
}

// SetBackground sets the background color.
func (s *Store) SetBackground(c RGB) {
	if s.state.Scene.Background == c {
		return
	}
	s.state.Scene.Background = c
	s.notify(Change{Field: FieldBackground})
}
