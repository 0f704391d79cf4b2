package components

import (
	"image/color"
	"math/rand"

	"github.com/yohamta/donburi"
)

type ParticleKind int

const (
	ParticleTrail ParticleKind = iota
	ParticleConfetti
	ParticleDoubleJump
	ParticleExplosion
	ParticleSparkle
)

type Particle struct {
	Kind          ParticleKind
	X, Y          float64
	VX, VY        float64
	Life          float64 // 1 at birth, removed at <= 0
	Size          float64
	Rotation      float64
	RotationSpeed float64
	Color         color.RGBA
}

// ScreenSpace reports whether the particle ignores the camera offset.
func (p *Particle) ScreenSpace() bool {
	return p.Kind == ParticleConfetti
}

// ParticlesData is a singleton owning every live particle.
type ParticlesData struct {
	List []Particle
	Rand *rand.Rand
}

var Particles = donburi.NewComponentType[ParticlesData]()
