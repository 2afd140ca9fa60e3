package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestPlaceOnSphere(t *testing.T) {
	for _, conv := range []Convention{FrontZ, FrontX} {
		for _, orbit := range []float64{-720, -180, -45.5, 0, 33, 90, 179, 180, 359, 1000} {
			for _, height := range []float64{0, 0.1, 0.25, 0.5, 0.75, 1} {
				for _, dist := range []float64{0.5, 1, 40, 250} {
					p := Place(conv, orbit, height, dist)
					got := p.X()*p.X() + p.Y()*p.Y() + p.Z()*p.Z()
					assert.InDelta(t, dist*dist, got, 1e-6*dist*dist,
						"conv=%s orbit=%v height=%v dist=%v", conv.Name, orbit, height, dist)
				}
			}
		}
	}
}

func TestPlacePoles(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		wantY  float64
	}{
		{"below", 0, -40},
		{"above", 1, 40},
		{"equator", 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, orbit := range []float64{0, 90, -135} {
				p := Place(FrontZ, orbit, tt.height, 40)
				assert.InDelta(t, tt.wantY, p.Y(), eps)
			}
		})
	}
}

func TestPlaceFrontDefault(t *testing.T) {
	p := Place(FrontZ, 0, 0.5, 40)
	assert.InDelta(t, 0, p.X(), eps)
	assert.InDelta(t, 0, p.Y(), eps)
	assert.InDelta(t, 40, p.Z(), eps)

	// 90 on the dial is the subject's right.
	p = Place(FrontZ, 90, 0.5, 40)
	assert.InDelta(t, -40, p.X(), eps)
	assert.InDelta(t, 0, p.Z(), 1e-6)

	p = Place(FrontX, 0, 0.5, 40)
	assert.InDelta(t, 40, p.X(), eps)
	assert.InDelta(t, 0, p.Z(), eps)
}

func TestPlaceIsPure(t *testing.T) {
	a := Place(FrontZ, 37.25, 0.61, 12.5)
	b := Place(FrontZ, 37.25, 0.61, 12.5)
	for i := range a {
		assert.Equal(t, math.Float64bits(a[i]), math.Float64bits(b[i]))
	}
}

func TestPlaceDoesNotClampHeight(t *testing.T) {
	// 1.5 goes past the top pole and comes back down the far side.
	p := Place(FrontZ, 0, 1.5, 10)
	assert.InDelta(t, 0, p.Y(), eps)
	assert.InDelta(t, -10, p.Z(), eps)
}

func TestConventionByName(t *testing.T) {
	c, err := ConventionByName("front-x")
	require.NoError(t, err)
	assert.Equal(t, FrontX, c)

	c, err = ConventionByName("")
	require.NoError(t, err)
	assert.Equal(t, FrontZ, c)

	_, err = ConventionByName("sideways")
	assert.Error(t, err)
}

func TestBufferTruncates(t *testing.T) {
	b := NewBuffer()
	lights := make([]Light, MaxLights+2)
	for i := range lights {
		lights[i] = Light{Kind: Point, Position: mgl32.Vec3{float32(i), 0, 0}, Color: [3]float32{1, 0.5, 0}, Intensity: 2, Range: 50}
	}
	b.SetLights(lights)

	require.Equal(t, MaxLights, b.Count)
	pos := b.Positions()
	assert.Equal(t, float32(MaxLights-1), pos[(MaxLights-1)*3])
	colors := b.Colors()
	assert.Equal(t, []float32{2, 1, 0}, colors[:3])
	assert.Equal(t, int32(Point), b.Kinds()[0])
	assert.Equal(t, float32(50), b.Ranges()[1])

	b.Clear()
	assert.Zero(t, b.Count)
	assert.Equal(t, make([]float32, MaxLights*3), b.Positions())
}

func TestHelperLines(t *testing.T) {
	dir := Light{Kind: Directional, Position: mgl32.Vec3{0, 0, 40}}
	lines := HelperLines(dir)
	require.Len(t, lines, 10)
	assert.Equal(t, mgl32.Vec3{}, lines[len(lines)-1], "directional helper points at the origin")
	for _, v := range lines[:8] {
		assert.InDelta(t, 40, v.Z(), 1e-4, "square faces the origin")
	}

	pt := Light{Kind: Point, Position: mgl32.Vec3{1, 2, 3}}
	lines = HelperLines(pt)
	assert.Len(t, lines, 24)
	for _, v := range lines {
		assert.InDelta(t, PointHelperSize, v.Sub(pt.Position).Len(), 1e-5)
	}

	assert.Nil(t, HelperLines(Light{Kind: Directional}))
}
