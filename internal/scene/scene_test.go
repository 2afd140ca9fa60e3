package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/asaro-studio/internal/lighting"
	"github.com/Faultbox/asaro-studio/internal/params"
)

type fakeRenderer struct {
	syncs      int
	background params.RGB
	lights     []lighting.Light
	base       params.RGB
	roughness  float64
	rotation   float64
}

func (f *fakeRenderer) SetBackground(c params.RGB) {
	f.syncs++
	f.background = c
}

func (f *fakeRenderer) SetLights(l []lighting.Light) { f.lights = l }

func (f *fakeRenderer) SetMaterial(base params.RGB, roughness float64) {
	f.base = base
	f.roughness = roughness
}

func (f *fakeRenderer) SetHeadRotation(rad float64) { f.rotation = rad }

var frontDirectional = Options{Convention: lighting.FrontZ, Kind: lighting.Directional}

func TestDefaultFrame(t *testing.T) {
	st := params.NewStore(params.Default())
	r := &fakeRenderer{}
	New(st, r, frontDirectional)

	require.Equal(t, 1, r.syncs)
	require.Len(t, r.lights, 1, "secondary starts disabled")
	p := r.lights[0].Position
	assert.InDelta(t, 0, p.X(), 1e-4)
	assert.InDelta(t, 0, p.Y(), 1e-4)
	assert.InDelta(t, 40, p.Z(), 1e-4)
	assert.Equal(t, float32(2), r.lights[0].Intensity)
	assert.Equal(t, "#222222", r.background.Hex())
	assert.Equal(t, 0.5, r.roughness)
}

func TestSyncOnEveryChange(t *testing.T) {
	st := params.NewStore(params.Default())
	r := &fakeRenderer{}
	sc := New(st, r, frontDirectional)

	st.SetLightHeight(params.Primary, 1)
	assert.Equal(t, 2, r.syncs)
	assert.InDelta(t, 40, r.lights[0].Position.Y(), 1e-4)

	st.SetLightEnabled(params.Secondary, true)
	require.Len(t, r.lights, 2)
	assert.InDelta(t, -40, r.lights[1].Position.Z(), 1e-4, "secondary sits behind at orbit 180")

	st.SetLightHelper(params.Secondary, true)
	assert.True(t, r.lights[1].Helper)

	st.SetHeadRotation(12.5)
	assert.Equal(t, 12.5, r.rotation)
	assert.Equal(t, 12.5, sc.Frame().HeadRotation)

	sc.Close()
	st.SetMaterialRoughness(0.1)
	assert.Equal(t, 0.5, r.roughness, "closed scene stops following")
}

func TestPointLightRange(t *testing.T) {
	s := params.Default()
	f := Derive(s, Options{Convention: lighting.FrontX, Kind: lighting.Point, Cutoff: 1.25})
	require.Len(t, f.Lights, 1)
	assert.Equal(t, lighting.Point, f.Lights[0].Kind)
	assert.Equal(t, float32(50), f.Lights[0].Range)
	assert.InDelta(t, 40, f.Lights[0].Position.X(), 1e-4)

	f = Derive(s, frontDirectional)
	assert.Zero(t, f.Lights[0].Range)
}

func TestDeriveColors(t *testing.T) {
	s := params.Default()
	s.Secondary.Enabled = true
	f := Derive(s, frontDirectional)
	require.Len(t, f.Lights, 2)
	assert.Equal(t, params.MustHex("#ffae00").Float32(), f.Lights[1].Color)
	assert.Equal(t, float32(0.25), f.Lights[1].Intensity)
}
