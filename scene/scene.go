// Package scene holds what gets drawn each frame: the single active shape, the optional
// particle backdrop and the camera, plus the contract render backends implement.
package scene

import (
	"math/rand"
	"time"

	"github.com/gekko3d/shapeviz/geom"
	"github.com/gekko3d/shapeviz/rgb"
	"github.com/gekko3d/shapeviz/shape"
)

type Scene struct {
	Camera     *geom.Camera
	Background rgb.Color

	shape     shape.Shape
	particles *ParticleField
	rng       *rand.Rand
}

// New creates an empty scene with the default camera. A nil rng seeds one from the clock.
func New(aspect float64, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scene{
		Camera:     geom.NewCamera(aspect),
		Background: rgb.FromHex(0x242424),
		rng:        rng,
	}
}

// Shape returns the active shape, or nil before the first Mount.
func (s *Scene) Shape() shape.Shape {
	return s.shape
}

// Mount makes sh the active shape and returns the one it replaced.
func (s *Scene) Mount(sh shape.Shape) shape.Shape {
	prev := s.shape
	s.shape = sh
	return prev
}

// Unmount removes the active shape.
func (s *Scene) Unmount() shape.Shape {
	return s.Mount(nil)
}

// AddParticles adds the particle backdrop. It reports false if one is already present.
func (s *Scene) AddParticles() bool {
	if s.particles != nil {
		return false
	}
	s.particles = NewParticleField(s.rng, DefaultParticleCount, DefaultParticleExtent)
	return true
}

// RemoveParticles drops the particle backdrop. It reports false if none was present.
func (s *Scene) RemoveParticles() bool {
	if s.particles == nil {
		return false
	}
	s.particles = nil
	return true
}

func (s *Scene) Particles() *ParticleField {
	return s.particles
}

func (s *Scene) ParticleCount() int {
	return s.particles.Len()
}

// Teardown releases the shape and the particles.
func (s *Scene) Teardown() {
	s.shape = nil
	s.particles = nil
}
