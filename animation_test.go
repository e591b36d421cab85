package shapeviz

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gekko3d/shapeviz/rgb"
	"github.com/gekko3d/shapeviz/scene"
	"github.com/gekko3d/shapeviz/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStepScene(t *testing.T, v shape.Variant) *scene.Scene {
	t.Helper()
	sc := scene.New(1, rand.New(rand.NewSource(1)))
	sh, err := shape.New(v, shape.DefaultParams())
	require.NoError(t, err)
	sc.Mount(sh)
	return sc
}

func quietState() *AppState {
	st := DefaultState()
	st.RotationEnabled = false
	st.ColorEnabled = false
	st.ScaleEnabled = false
	return st
}

func TestStep_RotationHalvesSpeed(t *testing.T) {
	sc := newStepScene(t, shape.VariantCube)
	st := quietState()
	st.RotationEnabled = true
	sc.Shape().SetSpeedX(4)
	sc.Shape().SetSpeedY(2)

	Step(sc, st, Frame{Delta: 2}, nil)

	assert.Equal(t, 4.0, sc.Shape().Rotation().X())
	assert.Equal(t, 2.0, sc.Shape().Rotation().Y())
}

func TestStep_RotationClassicSharesSpeed(t *testing.T) {
	sc := newStepScene(t, shape.VariantTorus)
	st := quietState()
	st.Profile = ProfileClassic
	st.RotationEnabled = true
	sc.Shape().SetSpeedX(4)
	sc.Shape().SetSpeedY(100)

	Step(sc, st, Frame{Delta: 2}, nil)

	assert.Equal(t, 4.0, sc.Shape().Rotation().X())
	assert.Equal(t, 4.0, sc.Shape().Rotation().Y())
}

func TestStep_RotationDisabled(t *testing.T) {
	sc := newStepScene(t, shape.VariantCube)
	st := quietState()

	Step(sc, st, Frame{Delta: 5}, nil)

	assert.Equal(t, 0.0, sc.Shape().Rotation().X())
	assert.Equal(t, 0.0, sc.Shape().Rotation().Y())
}

func TestStep_BaseColorOverride(t *testing.T) {
	sc := newStepScene(t, shape.VariantSphere)
	st := quietState()
	st.BaseColor = rgb.MustParse("#336699")

	Step(sc, st, Frame{}, nil)
	assert.Equal(t, st.BaseColor, sc.Shape().Color())

	// The override is continuous, not a one-shot set.
	sc.Shape().SetColor(rgb.Black)
	Step(sc, st, Frame{}, nil)
	assert.Equal(t, st.BaseColor, sc.Shape().Color())
}

func TestStep_ColorPingPong(t *testing.T) {
	a := rgb.MustParse("#ffdddd")
	b := rgb.MustParse("#242424")

	sc := newStepScene(t, shape.VariantCube)
	sc.Shape().SetColor(a)
	st := quietState()
	st.ColorEnabled = true
	st.ColorFrom = a
	st.ColorTo = b
	st.ColorLerpFactor = 1

	Step(sc, st, Frame{}, nil)
	assert.True(t, sc.Shape().Color().Equal(b))
	assert.Equal(t, b, st.ColorTo)
	assert.Equal(t, uint64(0), st.ColorLegs)

	// Reaching B swaps the endpoints before moving on.
	Step(sc, st, Frame{}, nil)
	assert.Equal(t, a, st.ColorTo)
	assert.Equal(t, b, st.ColorFrom)
	assert.True(t, sc.Shape().Color().Equal(a))
	assert.Equal(t, uint64(1), st.ColorLegs)
}

func TestStep_ColorSwapUsesQuantizedEquality(t *testing.T) {
	a := rgb.MustParse("#000000")
	b := rgb.MustParse("#ffffff")

	sc := newStepScene(t, shape.VariantCube)
	// Slightly off B in float terms, but the same 24-bit color.
	sc.Shape().SetColor(rgb.Color{R: 1 - 1e-4, G: 1 - 1e-4, B: 1 - 1e-4})
	st := quietState()
	st.ColorEnabled = true
	st.ColorFrom = a
	st.ColorTo = b
	st.ColorLerpFactor = 0.5

	Step(sc, st, Frame{}, nil)
	assert.Equal(t, a, st.ColorTo)
	assert.Equal(t, uint64(1), st.ColorLegs)
}

func TestStep_ColorNeverStalls(t *testing.T) {
	for _, factor := range []float64{0.01, 0.1, 0.3, 0.77, 1} {
		sc := newStepScene(t, shape.VariantCube)
		sc.Shape().SetColor(rgb.MustParse("#ffdddd"))
		st := quietState()
		st.ColorEnabled = true
		st.ColorFrom = rgb.MustParse("#ffdddd")
		st.ColorTo = rgb.MustParse("#242424")
		st.ColorLerpFactor = factor

		for i := 0; i < 20000 && st.ColorLegs < 4; i++ {
			Step(sc, st, Frame{}, nil)
		}
		assert.GreaterOrEqual(t, st.ColorLegs, uint64(4), "factor %v stalled", factor)
	}
}

func TestStep_ColorOffGridTargetCompletesLeg(t *testing.T) {
	sc := newStepScene(t, shape.VariantCube)
	sc.Shape().SetColor(rgb.Black)
	st := quietState()
	st.ColorEnabled = true
	st.ColorFrom = rgb.Black
	// 0.5*255 = 127.5 sits on a rounding boundary.
	st.ColorTo = rgb.Color{R: 0.5, G: 0.5, B: 0.5}
	st.ColorLerpFactor = 0.1

	for i := 0; i < 10000 && st.ColorLegs < 2; i++ {
		Step(sc, st, Frame{}, nil)
	}
	assert.GreaterOrEqual(t, st.ColorLegs, uint64(2))
	// Two legs: out to the snapped target and back to black, then swapped again.
	assert.Equal(t, rgb.Black, st.ColorFrom)
	assert.Equal(t, rgb.FromHex(0x808080), st.ColorTo)
}

func TestStep_ScaleDrivesResize(t *testing.T) {
	sc := newStepScene(t, shape.VariantCube)
	st := quietState()
	st.Profile = ProfileClassic
	st.ScaleEnabled = true

	var got []float64
	resize := func(f float64) { got = append(got, f) }

	Step(sc, st, Frame{Elapsed: 0}, resize)
	Step(sc, st, Frame{Elapsed: math.Pi / 2}, resize)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.0, got[0], 1e-12)
	assert.InDelta(t, 1.5, got[1], 1e-12)

	// The shape itself is never scaled.
	assert.Equal(t, 1.0, sc.Shape().Transform().Scale)

	st.ScaleEnabled = false
	Step(sc, st, Frame{Elapsed: 1}, resize)
	assert.Len(t, got, 2)
}

func TestScaleFactor_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		el := float64(i) * 0.137
		f := ScaleFactor(ProfileClassic, el, ScaleRange{})
		assert.GreaterOrEqual(t, f, 0.5)
		assert.LessOrEqual(t, f, 1.5)

		r := ScaleFactor(ProfileRanged, el, ScaleRange{Min: -5, Max: 30})
		assert.GreaterOrEqual(t, r, float64(MinOutputScale))
		assert.LessOrEqual(t, r, float64(MaxOutputScale))
	}

	assert.InDelta(t, 1.0, ScaleFactor(ProfileClassic, 0, ScaleRange{}), 1e-12)
	assert.InDelta(t, 5.0, ScaleFactor(ProfileRanged, 0, ScaleRange{Min: 3, Max: 7}), 1e-12)
	assert.InDelta(t, 7.0, ScaleFactor(ProfileRanged, math.Pi/2, ScaleRange{Min: 3, Max: 7}), 1e-12)
}

func TestStep_ReturnsSceneAndCamera(t *testing.T) {
	sc := newStepScene(t, shape.VariantCube)
	cmd := Step(sc, quietState(), Frame{}, nil)
	assert.Same(t, sc, cmd.Scene)
	assert.Same(t, sc.Camera, cmd.Camera)

	empty := scene.New(1, nil)
	cmd = Step(empty, DefaultState(), Frame{Delta: 1, Elapsed: 1}, nil)
	assert.Same(t, empty, cmd.Scene)
}
