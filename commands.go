package shapeviz

import (
	"github.com/gekko3d/shapeviz/rgb"
	"github.com/gekko3d/shapeviz/shape"
)

// Commands buffers control-surface input until the next frame flush.
type Commands struct {
	app *App
}

func (cmd *Commands) Send(commands ...Command) *Commands {
	cmd.app.pending = append(cmd.app.pending, commands...)
	return cmd
}

// Pending reports how many commands wait for the next flush.
func (cmd *Commands) Pending() int {
	return len(cmd.app.pending)
}

// Command is a typed control-surface event. Only the types in this file implement it.
type Command interface {
	command()
}

type Axis int

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
)

type (
	SelectVariant     struct{ Variant shape.Variant }
	SetWireframe      struct{ Enabled bool }
	SetCubeSize       struct{ Size float64 }
	SetSphereRadius   struct{ Radius float64 }
	SetSphereSegments struct{ Width, Height int }
	SetTorusRadius    struct{ Radius float64 }
	SetTorusTube      struct{ Tube float64 }

	// SetShapeColor recolors the active shape and the construction color of its variant.
	SetShapeColor      struct{ Color rgb.Color }
	SetBaseColor       struct{ Color rgb.Color }
	SetColorFrom       struct{ Color rgb.Color }
	SetColorTo         struct{ Color rgb.Color }
	SetColorLerpFactor struct{ Factor float64 }

	ToggleRotation  struct{ Enabled bool }
	ToggleColor     struct{ Enabled bool }
	ToggleScale     struct{ Enabled bool }
	ToggleParticles struct{ Enabled bool }

	SetRotationSpeed struct {
		Axis  Axis
		Speed float64
	}
	// SetRotationAngle sets an absolute angle given in degrees, 0..360.
	SetRotationAngle struct {
		Axis    Axis
		Degrees float64
	}

	SetOutputScale struct{ Scale float64 }
	SetScaleRange  struct{ Min, Max float64 }
	SetProfile     struct{ Profile Profile }
)

func (SelectVariant) command()      {}
func (SetWireframe) command()       {}
func (SetCubeSize) command()        {}
func (SetSphereRadius) command()    {}
func (SetSphereSegments) command()  {}
func (SetTorusRadius) command()     {}
func (SetTorusTube) command()       {}
func (SetShapeColor) command()      {}
func (SetBaseColor) command()       {}
func (SetColorFrom) command()       {}
func (SetColorTo) command()         {}
func (SetColorLerpFactor) command() {}
func (ToggleRotation) command()     {}
func (ToggleColor) command()        {}
func (ToggleScale) command()        {}
func (ToggleParticles) command()    {}
func (SetRotationSpeed) command()   {}
func (SetRotationAngle) command()   {}
func (SetOutputScale) command()     {}
func (SetScaleRange) command()      {}
func (SetProfile) command()         {}
