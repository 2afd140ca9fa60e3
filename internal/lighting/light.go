package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the maximum number of lights supported in shaders.
const MaxLights = 4

// Kind selects how the renderer treats a light's position.
type Kind int32

const (
	// Directional lights shine from Position towards the origin with no falloff.
	Directional Kind = iota
	// Point lights emit from Position and fade out at Range.
	Point
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case Directional:
		return "directional"
	case Point:
		return "point"
	default:
		return fmt.Sprintf("kind(%d)", int32(k))
	}
}

// KindByName parses a light kind from its config name.
func KindByName(name string) (Kind, error) {
	switch name {
	case "directional", "":
		return Directional, nil
	case "point":
		return Point, nil
	default:
		return 0, fmt.Errorf("unknown light kind %q", name)
	}
}

// Light is a placed light ready for GPU upload.
type Light struct {
	Kind      Kind
	Position  mgl32.Vec3 // World position
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
	Range     float32 // Distance cutoff for point lights, 0 means unlimited
	Helper    bool    // Draw the helper gizmo for this light
}

// Buffer holds lights for GPU upload.
type Buffer struct {
	Lights []Light
	Count  int
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Lights: make([]Light, 0, MaxLights),
	}
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxLights if necessary.
func (b *Buffer) SetLights(lights []Light) {
	b.Clear()
	count := min(len(lights), MaxLights)
	b.Lights = append(b.Lights, lights[:count]...)
	b.Count = count
}

// Positions returns positions as a flat slice.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *Buffer) Positions() []float32 {
	result := make([]float32, MaxLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Position.X()
		result[i*3+1] = light.Position.Y()
		result[i*3+2] = light.Position.Z()
	}
	return result
}

// Colors returns intensity-scaled colors as a flat slice.
func (b *Buffer) Colors() []float32 {
	result := make([]float32, MaxLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Color[0] * light.Intensity
		result[i*3+1] = light.Color[1] * light.Intensity
		result[i*3+2] = light.Color[2] * light.Intensity
	}
	return result
}

// Ranges returns distance cutoffs as a flat slice.
func (b *Buffer) Ranges() []float32 {
	result := make([]float32, MaxLights)
	for i, light := range b.Lights {
		result[i] = light.Range
	}
	return result
}

// Kinds returns light kinds as a flat slice.
func (b *Buffer) Kinds() []int32 {
	result := make([]int32, MaxLights)
	for i, light := range b.Lights {
		result[i] = int32(light.Kind)
	}
	return result
}
