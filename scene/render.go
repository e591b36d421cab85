package scene

import (
	"github.com/gekko3d/shapeviz/geom"
	"github.com/gekko3d/shapeviz/rgb"
	"github.com/go-gl/mathgl/mgl64"
)

// Backend turns render commands into output. SetSize changes the output resolution.
type Backend interface {
	SetSize(width, height float64)
	Render(cmd RenderCommand) error
}

// RenderCommand is a frame description: the scene and the camera to draw it with.
type RenderCommand struct {
	Scene  *Scene
	Camera *geom.Camera
}

func NewRenderCommand(s *Scene) RenderCommand {
	return RenderCommand{Scene: s, Camera: s.Camera}
}

// Stroke is a projected line with its color, in screen coordinates.
type Stroke struct {
	A, B  mgl64.Vec2
	Color rgb.Color
}

// Dot is a projected particle in screen coordinates.
type Dot struct {
	P     mgl64.Vec2
	Color rgb.Color
}

// Project flattens the command onto a screen of the given size. Backends share it so
// the SVG and raster outputs agree.
func (cmd RenderCommand) Project(screen geom.Screen) (strokes []Stroke, dots []Dot) {
	if cmd.Scene == nil || cmd.Camera == nil {
		return nil, nil
	}
	pr := cmd.Camera.Projector(screen)

	if pf := cmd.Scene.Particles(); pf != nil {
		dots = make([]Dot, 0, len(pf.Positions))
		for _, p := range pf.Positions {
			q, ok := pr.Point(mgl64.Vec3{float64(p.X()), float64(p.Y()), float64(p.Z())})
			if ok {
				dots = append(dots, Dot{P: q, Color: pf.Color})
			}
		}
	}

	if sh := cmd.Scene.Shape(); sh != nil {
		world := sh.Transform().Apply(sh.Lines())
		strokes = make([]Stroke, 0, len(world))
		for _, l := range world {
			a, b, ok := pr.Line(l)
			if ok {
				strokes = append(strokes, Stroke{A: a, B: b, Color: sh.Color()})
			}
		}
	}
	return strokes, dots
}

// Multi fans every call out to each backend in order and stops at the first render error.
type Multi []Backend

func (m Multi) SetSize(width, height float64) {
	for _, b := range m {
		b.SetSize(width, height)
	}
}

func (m Multi) Render(cmd RenderCommand) error {
	for _, b := range m {
		if err := b.Render(cmd); err != nil {
			return err
		}
	}
	return nil
}
