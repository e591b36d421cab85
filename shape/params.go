package shape

import (
	"fmt"

	"github.com/gekko3d/shapeviz/geom"
	"github.com/gekko3d/shapeviz/rgb"
	"github.com/go-gl/mathgl/mgl64"
)

// Segments is the sphere subdivision. Zero fields fall back to 16 x 8.
type Segments struct {
	Width  int
	Height int
}

type CubeParams struct {
	Size      float64
	Color     rgb.Color
	Wireframe bool
	Position  mgl64.Vec3
}

type SphereParams struct {
	Radius    float64
	Color     rgb.Color
	Segments  Segments
	Wireframe bool
	Position  mgl64.Vec3
}

type TorusParams struct {
	Radius    float64
	Tube      float64
	Color     rgb.Color
	Wireframe bool
	Position  mgl64.Vec3
}

// Params holds one parameter record per variant; New reads the one matching its variant.
type Params struct {
	Cube   CubeParams
	Sphere SphereParams
	Torus  TorusParams
}

func DefaultParams() Params {
	return Params{
		Cube: CubeParams{
			Size:      5,
			Color:     rgb.Red,
			Wireframe: true,
		},
		Sphere: SphereParams{
			Radius:    5,
			Color:     rgb.Red,
			Segments:  Segments{Width: 32, Height: 16},
			Wireframe: false,
		},
		Torus: TorusParams{
			Radius:    4,
			Tube:      1,
			Color:     rgb.Red,
			Wireframe: true,
		},
	}
}

// Wireframe reports the wireframe flag of variant v.
func (p Params) Wireframe(v Variant) bool {
	switch v {
	case VariantCube:
		return p.Cube.Wireframe
	case VariantSphere:
		return p.Sphere.Wireframe
	case VariantTorus:
		return p.Torus.Wireframe
	}
	return false
}

// SetWireframe sets the wireframe flag of variant v.
func (p *Params) SetWireframe(v Variant, enabled bool) error {
	switch v {
	case VariantCube:
		p.Cube.Wireframe = enabled
	case VariantSphere:
		p.Sphere.Wireframe = enabled
	case VariantTorus:
		p.Torus.Wireframe = enabled
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return nil
}

// SetColor sets the construction color of variant v.
func (p *Params) SetColor(v Variant, c rgb.Color) error {
	switch v {
	case VariantCube:
		p.Cube.Color = c
	case VariantSphere:
		p.Sphere.Color = c
	case VariantTorus:
		p.Torus.Color = c
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return nil
}

// New builds a shape of variant v from the matching record in p. It returns a nil shape
// and an error wrapping ErrUnknownVariant when v is not a known variant.
func New(v Variant, p Params) (Shape, error) {
	switch v {
	case VariantCube:
		return NewCube(p.Cube), nil
	case VariantSphere:
		return NewSphere(p.Sphere), nil
	case VariantTorus:
		return NewTorus(p.Torus), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
}

func NewCube(p CubeParams) *Cube {
	mesh := geom.BoxMesh(p.Size, p.Size, p.Size)
	return &Cube{
		base: newBase(mesh, p.Color, p.Wireframe, p.Position),
		size: p.Size,
	}
}

func NewSphere(p SphereParams) *Sphere {
	seg := p.Segments
	if seg.Width <= 0 {
		seg.Width = 16
	}
	if seg.Height <= 0 {
		seg.Height = 8
	}
	mesh := geom.SphereMesh(p.Radius, seg.Width, seg.Height)
	return &Sphere{
		base:     newBase(mesh, p.Color, p.Wireframe, p.Position),
		radius:   p.Radius,
		segments: seg,
	}
}

func NewTorus(p TorusParams) *Torus {
	mesh := geom.TorusMesh(p.Radius, p.Tube, TorusRadialSegments, TorusTubularSegments)
	return &Torus{
		base:   newBase(mesh, p.Color, p.Wireframe, p.Position),
		radius: p.Radius,
		tube:   p.Tube,
	}
}
