package factory

import (
	"math/rand"

	"github.com/danigirl329/kiro-game-challenge/archetypes"
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/yohamta/donburi"
)

func CreateParticles(w donburi.World, rng *rand.Rand) *donburi.Entry {
	particles := archetypes.Particles.Spawn(w)
	components.Particles.SetValue(particles, components.ParticlesData{
		List: make([]components.Particle, 0, cfg.Particles.MaxTrail*2),
		Rand: rng,
	})
	return particles
}
