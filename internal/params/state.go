// Package params holds the studio's lighting parameters and notifies
// subscribers when they change.
package params

import "math"

// Light holds the parameters for one studio light.
type Light struct {
	Enabled   bool    `yaml:"enabled"`
	Color     RGB     `yaml:"color"`
	Orbit     float64 `yaml:"orbit"`     // Degrees around the vertical axis
	Height    float64 `yaml:"height"`    // 0 below the subject, 1 above
	Intensity float64 `yaml:"intensity"` // >= 0
	Distance  float64 `yaml:"distance"`  // > 0
	Helper    bool    `yaml:"helper"`
}

// Material holds the surface parameters of the subject.
type Material struct {
	BaseColor RGB     `yaml:"base_color"`
	Roughness float64 `yaml:"roughness"` // 0-1
}

// Scene holds scene-wide parameters.
type Scene struct {
	HeadRotation float64 `yaml:"head_rotation"` // Radians, accumulates without wrapping
	Background   RGB     `yaml:"background"`
}

// State is the full parameter set.
type State struct {
	Primary   Light    `yaml:"primary"`
	Secondary Light    `yaml:"secondary"`
	Material  Material `yaml:"material"`
	Scene     Scene    `yaml:"scene"`
}

// Slot identifies one of the two studio lights.
type Slot int

const (
	Primary Slot = iota
	Secondary
)

// String returns the slot name.
func (s Slot) String() string {
	if s == Secondary {
		return "secondary"
	}
	return "primary"
}

// Default returns the initial studio parameters.
func Default() State {
	return State{
		Primary: Light{
			Enabled:   true,
			Color:     MustHex("#ffffff"),
			Orbit:     0,
			Height:    0.5,
			Intensity: 2,
			Distance:  40,
		},
		Secondary: Light{
			Enabled:   false,
			Color:     MustHex("#ffae00"),
			Orbit:     180,
			Height:    0.5,
			Intensity: 0.25,
			Distance:  40,
		},
		Material: Material{
			BaseColor: MustHex("#ffffff"),
			Roughness: 0.5,
		},
		Scene: Scene{
			HeadRotation: 0,
			Background:   MustHex("#222222"),
		},
	}
}

// Light returns the parameters of the given slot.
func (s State) Light(slot Slot) Light {
	if slot == Secondary {
		return s.Secondary
	}
	return s.Primary
}

func (s *State) light(slot Slot) *Light {
	if slot == Secondary {
		return &s.Secondary
	}
	return &s.Primary
}

// Sanitize clamps every field into its valid range and folds orbits into
// (-180, 180]. Fields that are NaN or infinite and distances that are not
// positive fall back to their default value.
func (s State) Sanitize() State {
	def := Default()
	for _, slot := range []Slot{Primary, Secondary} {
		l, d := s.light(slot), def.light(slot)
		l.Orbit = foldOrbit(orDefault(l.Orbit, d.Orbit))
		l.Height = clamp01(orDefault(l.Height, d.Height))
		l.Intensity = max(orDefault(l.Intensity, d.Intensity), 0)
		if l.Distance = orDefault(l.Distance, d.Distance); l.Distance <= 0 {
			l.Distance = d.Distance
		}
	}
	// The primary light has no enable control.
	s.Primary.Enabled = true
	s.Material.Roughness = clamp01(orDefault(s.Material.Roughness, def.Material.Roughness))
	s.Scene.HeadRotation = orDefault(s.Scene.HeadRotation, def.Scene.HeadRotation)
	return s
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func orDefault(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// foldOrbit brings any angle into (-180, 180].
func foldOrbit(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	}
	if deg <= -180 {
		deg += 360
	}
	return deg
}
