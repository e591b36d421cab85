package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform places an object: translation, then XYZ Euler rotation, then uniform scale.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    float64
}

func NewTransform() Transform {
	return Transform{Scale: 1}
}

func (t Transform) ObjectToWorld() mgl64.Mat4 {
	// M = T * Rx * Ry * Rz * S
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := mgl64.HomogRotate3DX(t.Rotation.X()).
		Mul4(mgl64.HomogRotate3DY(t.Rotation.Y())).
		Mul4(mgl64.HomogRotate3DZ(t.Rotation.Z()))
	scale := mgl64.Scale3D(t.Scale, t.Scale, t.Scale)

	return translate.Mul4(rotate).Mul4(scale)
}

// Apply transforms every line endpoint into world space.
func (t Transform) Apply(lines []Line) []Line {
	m := t.ObjectToWorld()
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{
			mgl64.TransformCoordinate(l[0], m),
			mgl64.TransformCoordinate(l[1], m),
		}
	}
	return out
}
