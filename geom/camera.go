package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking down -Z with +Y up.
type Camera struct {
	Position mgl64.Vec3
	FovY     float64 // degrees
	Aspect   float64
	Near     float64
	Far      float64
}

func NewCamera(aspect float64) *Camera {
	return &Camera{
		Position: mgl64.Vec3{0, 0, 20},
		FovY:     33,
		Aspect:   aspect,
		Near:     0.1,
		Far:      50,
	}
}

func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	eye := c.Position
	target := eye.Add(mgl64.Vec3{0, 0, -1})
	return mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0})
}

func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Project maps a world point to normalized device coordinates. ok is false when the
// point lies behind the camera or outside the near/far range.
func (c *Camera) Project(p mgl64.Vec3) (ndc mgl64.Vec3, ok bool) {
	return project(c.ViewProjection(), p)
}

func project(vp mgl64.Mat4, p mgl64.Vec3) (mgl64.Vec3, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl64.Vec3{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return ndc, ndc.Z() >= -1 && ndc.Z() <= 1
}

// Screen is a viewport in output units with the origin at the top-left corner.
type Screen struct {
	Width, Height float64
}

func (s Screen) FromNDC(ndc mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{
		(ndc.X() + 1) / 2 * s.Width,
		(1 - ndc.Y()) / 2 * s.Height,
	}
}

// Projector caches the view-projection matrix for a batch of projections.
type Projector struct {
	vp     mgl64.Mat4
	screen Screen
}

func (c *Camera) Projector(screen Screen) *Projector {
	return &Projector{vp: c.ViewProjection(), screen: screen}
}

// Point projects p onto the screen.
func (p *Projector) Point(v mgl64.Vec3) (mgl64.Vec2, bool) {
	ndc, ok := project(p.vp, v)
	if !ok {
		return mgl64.Vec2{}, false
	}
	return p.screen.FromNDC(ndc), true
}

// Line projects both endpoints; a line is dropped if either endpoint is not visible.
func (p *Projector) Line(l Line) (a, b mgl64.Vec2, ok bool) {
	a, okA := p.Point(l[0])
	b, okB := p.Point(l[1])
	return a, b, okA && okB
}
