package shapeviz

import (
	"fmt"
	"math"

	"github.com/gekko3d/shapeviz/scene"
	"github.com/gekko3d/shapeviz/shape"
)

// Effect tells the caller of Reduce what else must happen outside the state.
type Effect uint8

const (
	EffectNone    Effect = 0
	EffectRebuilt Effect = 1 << iota
	EffectResized
)

func (e Effect) Has(flag Effect) bool {
	return e&flag != 0
}

// Reduce applies one command to the scene and state. Commands that change shape
// parameters rebuild the active shape; if the rebuild fails the previous shape stays
// mounted and st is left unchanged.
func Reduce(sc *scene.Scene, st *AppState, c Command) (Effect, error) {
	switch c := c.(type) {
	case SelectVariant:
		return rebuild(sc, st, c.Variant, st.Params)

	case SetWireframe:
		p := st.Params
		if err := p.SetWireframe(st.Variant, c.Enabled); err != nil {
			return EffectNone, err
		}
		return rebuild(sc, st, st.Variant, p)

	case SetCubeSize:
		p := st.Params
		p.Cube.Size = c.Size
		return rebuildIf(sc, st, shape.VariantCube, p)

	case SetSphereRadius:
		p := st.Params
		p.Sphere.Radius = c.Radius
		return rebuildIf(sc, st, shape.VariantSphere, p)

	case SetSphereSegments:
		p := st.Params
		p.Sphere.Segments = shape.Segments{Width: c.Width, Height: c.Height}
		return rebuildIf(sc, st, shape.VariantSphere, p)

	case SetTorusRadius:
		p := st.Params
		p.Torus.Radius = c.Radius
		return rebuildIf(sc, st, shape.VariantTorus, p)

	case SetTorusTube:
		p := st.Params
		p.Torus.Tube = c.Tube
		return rebuildIf(sc, st, shape.VariantTorus, p)

	case SetShapeColor:
		if err := st.Params.SetColor(st.Variant, c.Color); err != nil {
			return EffectNone, err
		}
		if sh := sc.Shape(); sh != nil {
			sh.SetColor(c.Color)
		}

	case SetBaseColor:
		st.BaseColor = c.Color
	case SetColorFrom:
		st.ColorFrom = c.Color.Quantized()
	case SetColorTo:
		st.ColorTo = c.Color.Quantized()
	case SetColorLerpFactor:
		st.ColorLerpFactor = c.Factor

	case ToggleRotation:
		st.RotationEnabled = c.Enabled
	case ToggleColor:
		st.ColorEnabled = c.Enabled
	case ToggleScale:
		st.ScaleEnabled = c.Enabled
	case ToggleParticles:
		st.ParticlesEnabled = c.Enabled
		if c.Enabled {
			sc.AddParticles()
		} else {
			sc.RemoveParticles()
		}

	case SetRotationSpeed:
		if sh := sc.Shape(); sh != nil {
			setSpeed(sh, st.Profile, c.Axis, c.Speed)
		}

	case SetRotationAngle:
		if sh := sc.Shape(); sh != nil {
			rad := degreesToRadians(c.Degrees)
			switch c.Axis {
			case AxisX:
				sh.SetRotationX(rad)
			case AxisY:
				sh.SetRotationY(rad)
			default:
				sh.SetRotation(rad, rad)
			}
		}

	case SetOutputScale:
		st.OutputScale = c.Scale
		return EffectResized, nil
	case SetScaleRange:
		st.ScaleRange = ScaleRange{Min: c.Min, Max: c.Max}
	case SetProfile:
		p, err := ParseProfile(string(c.Profile))
		if err != nil {
			return EffectNone, err
		}
		st.Profile = p

	default:
		return EffectNone, fmt.Errorf("unsupported command %T", c)
	}
	return EffectNone, nil
}

// rebuildIf stores p and rebuilds only when v is the active variant.
func rebuildIf(sc *scene.Scene, st *AppState, v shape.Variant, p shape.Params) (Effect, error) {
	if st.Variant != v {
		st.Params = p
		return EffectNone, nil
	}
	return rebuild(sc, st, v, p)
}

func rebuild(sc *scene.Scene, st *AppState, v shape.Variant, p shape.Params) (Effect, error) {
	sh, err := shape.New(v, p)
	if err != nil {
		return EffectNone, err
	}
	sc.Mount(sh)
	st.Variant = v
	st.Params = p
	return EffectRebuilt, nil
}

func setSpeed(sh shape.Shape, p Profile, axis Axis, v float64) {
	if p == ProfileClassic {
		sh.SetSpeed(v)
		return
	}
	switch axis {
	case AxisX:
		sh.SetSpeedX(v)
	case AxisY:
		sh.SetSpeedY(v)
	default:
		sh.SetSpeed(v)
	}
}

func degreesToRadians(deg float64) float64 {
	return deg / 360 * 2 * math.Pi
}
