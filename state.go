package shapeviz

import (
	"fmt"

	"github.com/gekko3d/shapeviz/rgb"
	"github.com/gekko3d/shapeviz/shape"
)

// Profile selects between the two animation behaviours the visualizer supports.
type Profile string

const (
	// ProfileClassic shares one rotation speed between both axes and scales output by a
	// plain sine in (0.5, 1.5).
	ProfileClassic Profile = "classic"
	// ProfileRanged uses independent axis speeds and remaps the sine into ScaleRange,
	// clamped to [MinOutputScale, MaxOutputScale].
	ProfileRanged Profile = "ranged"
)

func ParseProfile(s string) (Profile, error) {
	switch p := Profile(s); p {
	case ProfileClassic, ProfileRanged:
		return p, nil
	}
	return "", fmt.Errorf("unknown profile %q", s)
}

const (
	MinOutputScale = 1
	MaxOutputScale = 10
)

type ScaleRange struct {
	Min float64
	Max float64
}

// AppState is everything the control surface can change. It is owned by one App and
// only touched from the frame loop goroutine.
type AppState struct {
	Profile Profile

	RotationEnabled  bool
	ColorEnabled     bool
	ScaleEnabled     bool
	ParticlesEnabled bool

	// BaseColor is forced onto the shape every frame while ColorEnabled is false.
	BaseColor rgb.Color
	// ColorFrom and ColorTo are the ping-pong endpoints; they swap each time the shape
	// color reaches ColorTo.
	ColorFrom       rgb.Color
	ColorTo         rgb.Color
	ColorLerpFactor float64
	// ColorLegs counts completed ping-pong legs.
	ColorLegs uint64

	ScaleRange ScaleRange
	// OutputScale is the manual output scale used while ScaleEnabled is false.
	OutputScale float64

	Variant shape.Variant
	Params  shape.Params
}

func DefaultState() *AppState {
	return &AppState{
		Profile: ProfileRanged,

		RotationEnabled:  true,
		ColorEnabled:     false,
		ScaleEnabled:     true,
		ParticlesEnabled: false,

		BaseColor:       rgb.White,
		ColorFrom:       rgb.FromHex(0xffdddd),
		ColorTo:         rgb.FromHex(0x242424),
		ColorLerpFactor: 0.1,

		ScaleRange:  ScaleRange{Min: 3, Max: 7},
		OutputScale: 1,

		Variant: shape.VariantSphere,
		Params:  shape.DefaultParams(),
	}
}
