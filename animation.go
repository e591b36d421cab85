package shapeviz

import (
	"math"

	"github.com/gekko3d/shapeviz/scene"
	"github.com/gekko3d/shapeviz/shape"
)

// Frame carries the timing of one tick, in seconds. Delta drives rotation; Elapsed is
// the wall-clock time since start and drives the scale channel.
type Frame struct {
	Delta   float64
	Elapsed float64
}

// ResizeFunc receives the output scale factor computed by the scale channel.
type ResizeFunc func(factor float64)

// Step advances the animation by one frame and returns the render command for it.
// Channels run in a fixed order: rotation, color (or the base color override), scale.
// The color ping-pong endpoints live in st and are swapped in place.
func Step(sc *scene.Scene, st *AppState, f Frame, resize ResizeFunc) scene.RenderCommand {
	if sh := sc.Shape(); sh != nil {
		if st.RotationEnabled {
			animateRotation(sh, st.Profile, f.Delta)
		}
		if st.ColorEnabled {
			animateColor(sh, st)
		} else {
			sh.SetColor(st.BaseColor)
		}
	}

	if st.ScaleEnabled && resize != nil {
		resize(ScaleFactor(st.Profile, f.Elapsed, st.ScaleRange))
	}

	return scene.NewRenderCommand(sc)
}

func animateRotation(sh shape.Shape, p Profile, dt float64) {
	sx, sy := sh.SpeedX(), sh.SpeedY()
	if p == ProfileClassic {
		sx, sy = sh.Speed(), sh.Speed()
	}
	// A speed of 1 turns half a radian per second.
	rot := sh.Rotation()
	sh.SetRotation(rot.X()+dt*sx/2, rot.Y()+dt*sy/2)
}

// Endpoints are kept on the 24-bit grid: an off-grid target sitting on a rounding
// boundary would otherwise be approached from one side without ever matching.
func animateColor(sh shape.Shape, st *AppState) {
	st.ColorFrom, st.ColorTo = st.ColorFrom.Quantized(), st.ColorTo.Quantized()
	cur := sh.Color()
	if cur.Equal(st.ColorTo) {
		st.ColorFrom, st.ColorTo = st.ColorTo, st.ColorFrom
		st.ColorLegs++
	}
	sh.SetColor(cur.Lerp(st.ColorTo, st.ColorLerpFactor))
}

// ScaleFactor returns the output scale at elapsed seconds for profile p.
func ScaleFactor(p Profile, elapsed float64, r ScaleRange) float64 {
	if p == ProfileRanged {
		s := (math.Sin(elapsed)+1)*0.5*(r.Max-r.Min) + r.Min
		return min(max(s, MinOutputScale), MaxOutputScale)
	}
	return math.Sin(elapsed)*0.5 + 1
}
