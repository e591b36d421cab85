package scene

import (
	"math/rand"

	"github.com/gekko3d/shapeviz/rgb"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultParticleCount  = 5000
	DefaultParticleExtent = 15
)

// ParticleField is a static point cloud drawn behind the shape.
type ParticleField struct {
	Positions []mgl32.Vec3
	Size      float32
	Color     rgb.Color
}

// NewParticleField scatters count points uniformly in a cube of side extent centered
// at the origin.
func NewParticleField(rng *rand.Rand, count int, extent float32) *ParticleField {
	pos := make([]mgl32.Vec3, count)
	for i := range pos {
		pos[i] = mgl32.Vec3{
			(rng.Float32() - 0.5) * extent,
			(rng.Float32() - 0.5) * extent,
			(rng.Float32() - 0.5) * extent,
		}
	}
	return &ParticleField{
		Positions: pos,
		Size:      0.005,
		Color:     rgb.White,
	}
}

func (p *ParticleField) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Positions)
}
