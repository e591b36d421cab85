// Package shape holds the closed set of renderable primitives. A Shape owns immutable
// line geometry built once at construction; only its material color, rotation angles
// and rotation speeds change afterwards.
package shape

import (
	"errors"
	"fmt"

	"github.com/gekko3d/shapeviz/geom"
	"github.com/gekko3d/shapeviz/rgb"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type Variant string

const (
	VariantCube   Variant = "cube"
	VariantSphere Variant = "sphere"
	VariantTorus  Variant = "torus"
)

// Variants lists every supported variant in display order.
var Variants = []Variant{VariantCube, VariantSphere, VariantTorus}

var ErrUnknownVariant = errors.New("unknown shape variant")

// ParseVariant validates a variant tag.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	switch v {
	case VariantCube, VariantSphere, VariantTorus:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

type Id string

func makeId() Id {
	return Id(uuid.NewString())
}

// Shape is implemented by *Cube, *Sphere and *Torus only.
type Shape interface {
	ID() Id
	Variant() Variant

	Color() rgb.Color
	SetColor(c rgb.Color)

	Rotation() mgl64.Vec2
	SetRotation(x, y float64)
	SetRotationX(x float64)
	SetRotationY(y float64)

	// Speed is the shared rotation speed; it reports the X axis speed when the axes differ.
	Speed() float64
	SpeedX() float64
	SpeedY() float64
	SetSpeed(v float64)
	SetSpeedX(v float64)
	SetSpeedY(v float64)

	Wireframe() bool
	Position() mgl64.Vec3
	Lines() []geom.Line
	Transform() geom.Transform

	sealed()
}

type base struct {
	id        Id
	color     rgb.Color
	wireframe bool
	position  mgl64.Vec3
	rotation  mgl64.Vec2
	speed     mgl64.Vec2
	lines     []geom.Line
}

func newBase(mesh *geom.Mesh, color rgb.Color, wireframe bool, position mgl64.Vec3) base {
	var lines []geom.Line
	if wireframe {
		lines = geom.Edges(mesh, geom.DefaultEdgeThreshold)
	} else {
		lines = geom.FaceLines(mesh)
	}
	return base{
		id:        makeId(),
		color:     color,
		wireframe: wireframe,
		position:  position,
		speed:     mgl64.Vec2{1, 1},
		lines:     lines,
	}
}

func (b *base) ID() Id                   { return b.id }
func (b *base) Color() rgb.Color         { return b.color }
func (b *base) SetColor(c rgb.Color)     { b.color = c }
func (b *base) Rotation() mgl64.Vec2     { return b.rotation }
func (b *base) SetRotation(x, y float64) { b.rotation = mgl64.Vec2{x, y} }
func (b *base) SetRotationX(x float64)   { b.rotation[0] = x }
func (b *base) SetRotationY(y float64)   { b.rotation[1] = y }
func (b *base) Speed() float64           { return b.speed[0] }
func (b *base) SpeedX() float64          { return b.speed[0] }
func (b *base) SpeedY() float64          { return b.speed[1] }
func (b *base) SetSpeed(v float64)       { b.speed = mgl64.Vec2{v, v} }
func (b *base) SetSpeedX(v float64)      { b.speed[0] = v }
func (b *base) SetSpeedY(v float64)      { b.speed[1] = v }
func (b *base) Wireframe() bool          { return b.wireframe }
func (b *base) Position() mgl64.Vec3     { return b.position }
func (b *base) sealed()                  {}

// Lines returns the object-space geometry. Callers must not modify it.
func (b *base) Lines() []geom.Line { return b.lines }

// Transform returns the current object-to-world placement.
func (b *base) Transform() geom.Transform {
	t := geom.NewTransform()
	t.Position = b.position
	t.Rotation = mgl64.Vec3{b.rotation[0], b.rotation[1], 0}
	return t
}

type Cube struct {
	base
	size float64
}

func (c *Cube) Variant() Variant { return VariantCube }
func (c *Cube) Size() float64    { return c.size }

type Sphere struct {
	base
	radius   float64
	segments Segments
}

func (s *Sphere) Variant() Variant   { return VariantSphere }
func (s *Sphere) Radius() float64    { return s.radius }
func (s *Sphere) Segments() Segments { return s.segments }

const (
	TorusRadialSegments  = 16
	TorusTubularSegments = 100
)

type Torus struct {
	base
	radius float64
	tube   float64
}

func (t *Torus) Variant() Variant { return VariantTorus }
func (t *Torus) Radius() float64  { return t.radius }
func (t *Torus) Tube() float64    { return t.tube }
