package systems

import (
	"image/color"
	"math"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RegisterEffects subscribes the particle spawners to gameplay events.
func RegisterEffects(w donburi.World) {
	components.LandingImpact.Subscribe(w, func(w donburi.World, e components.LandingImpactEvent) {
		spawnExplosion(w, e.X, e.Y)
	})
	components.Impact.Subscribe(w, func(w donburi.World, e components.ImpactEvent) {
		spawnExplosion(w, e.X, e.Y)
	})
	components.DoubleJump.Subscribe(w, func(w donburi.World, e components.DoubleJumpEvent) {
		spawnDoubleJump(w, e.X, e.Y)
	})
	components.TripleJump.Subscribe(w, func(w donburi.World, e components.TripleJumpEvent) {
		spawnConfetti(w, cfg.Particles.TripleJumpConfetti)
		spawnDoubleJump(w, e.X, e.Y)
	})
	components.Trail.Subscribe(w, func(w donburi.World, e components.TrailEvent) {
		spawnTrail(w, e.X, e.Y)
	})
	components.Collected.Subscribe(w, onCollectedEffect)
	components.SecretDiscovered.Subscribe(w, func(w donburi.World, _ components.SecretDiscoveredEvent) {
		spawnConfetti(w, cfg.Particles.SecretConfetti)
	})
	components.NewHighScore.Subscribe(w, func(w donburi.World, _ components.NewHighScoreEvent) {
		spawnConfetti(w, cfg.Particles.HighScoreConfetti)
	})
}

func onCollectedEffect(w donburi.World, e components.CollectedEvent) {
	switch e.Kind {
	case leveldata.Coin:
		spawnSparkles(w, e.X, e.Y, cfg.Particles.CoinColor, cfg.Particles.CoinSparkles)
	case leveldata.Gem:
		spawnSparkles(w, e.X, e.Y, cfg.Particles.GemColor, cfg.Particles.GemSparkles)
	}
}

// UpdateEffects delivers the events queued this tick and then advances every
// particle, dropping the dead ones.
func UpdateEffects(w donburi.World) {
	events.ProcessAllEvents(w)

	particles := getParticles(w)
	if particles == nil {
		return
	}

	screenBottom := float64(cfg.C.Height) + 50
	live := particles.List[:0]
	for _, p := range particles.List {
		advanceParticle(&p)
		if p.Life <= 0 || (p.Kind == components.ParticleConfetti && p.Y > screenBottom) {
			continue
		}
		live = append(live, p)
	}
	particles.List = live
}

func advanceParticle(p *components.Particle) {
	p.X += p.VX
	p.Y += p.VY

	switch p.Kind {
	case components.ParticleConfetti:
		p.Rotation += p.RotationSpeed
		p.VY += cfg.Particles.ConfettiGravity
		p.Life -= cfg.Particles.DefaultLife
	case components.ParticleDoubleJump:
		p.VX *= cfg.Particles.DoubleJumpDecay
		p.VY *= cfg.Particles.DoubleJumpDecay
		p.Life -= cfg.Particles.DefaultLife
	case components.ParticleTrail:
		p.VX *= cfg.Particles.TrailDecay
		p.VY *= cfg.Particles.TrailDecay
		p.Life -= cfg.Particles.TrailLife
	case components.ParticleExplosion:
		p.VX *= cfg.Particles.ExplosionDecay
		p.VY *= cfg.Particles.ExplosionDecay
		p.Life -= cfg.Particles.ExplosionLife
	case components.ParticleSparkle:
		p.Rotation += p.RotationSpeed
		p.VY += cfg.Particles.SparkleGravity
		p.Life -= cfg.Particles.SparkleLife
	}
}

func getParticles(w donburi.World) *components.ParticlesData {
	entry, ok := components.Particles.First(w)
	if !ok {
		return nil
	}
	return components.Particles.Get(entry)
}

// CountParticles returns how many live particles are of the given kind.
func CountParticles(w donburi.World, kind components.ParticleKind) int {
	particles := getParticles(w)
	if particles == nil {
		return 0
	}
	n := 0
	for i := range particles.List {
		if particles.List[i].Kind == kind {
			n++
		}
	}
	return n
}

func spawnTrail(w donburi.World, x, y float64) {
	particles := getParticles(w)
	if particles == nil || CountParticles(w, components.ParticleTrail) >= cfg.Particles.MaxTrail {
		return
	}
	rng := particles.Rand
	particles.List = append(particles.List, components.Particle{
		Kind:  components.ParticleTrail,
		X:     x,
		Y:     y,
		VX:    (rng.Float64() - 0.5) * 0.5,
		VY:    (rng.Float64() - 0.5) * 0.5,
		Life:  1,
		Size:  rng.Float64()*2 + 3,
		Color: cfg.Particles.TrailColor,
	})
}

// spawnConfetti drops count pieces from just above the screen. Confetti lives
// in screen space and ignores the camera.
func spawnConfetti(w donburi.World, count int) {
	particles := getParticles(w)
	if particles == nil {
		return
	}
	rng := particles.Rand
	palette := cfg.Particles.Palette
	for i := 0; i < count; i++ {
		particles.List = append(particles.List, components.Particle{
			Kind:          components.ParticleConfetti,
			X:             rng.Float64() * float64(cfg.C.Width),
			Y:             -20 - rng.Float64()*100,
			VX:            (rng.Float64() - 0.5) * 4,
			VY:            rng.Float64()*2 + 1,
			Life:          1,
			Size:          rng.Float64()*4 + 6,
			Rotation:      rng.Float64() * math.Pi * 2,
			RotationSpeed: (rng.Float64() - 0.5) * 0.2,
			Color:         palette[rng.Intn(len(palette))],
		})
	}
}

func spawnDoubleJump(w donburi.World, x, y float64) {
	particles := getParticles(w)
	if particles == nil {
		return
	}
	count := cfg.Particles.DoubleJumpCount
	for i := 0; i < count; i++ {
		angle := math.Pi * 2 * float64(i) / float64(count)
		particles.List = append(particles.List, components.Particle{
			Kind:  components.ParticleDoubleJump,
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * 3,
			VY:    math.Sin(angle) * 3,
			Life:  1,
			Size:  5,
			Color: cfg.Particles.DoubleJumpColor,
		})
	}
}

func spawnExplosion(w donburi.World, x, y float64) {
	particles := getParticles(w)
	if particles == nil {
		return
	}
	rng := particles.Rand
	// explosions only use the purple half of the palette
	palette := cfg.Particles.Palette[:3]
	count := cfg.Particles.ExplosionCount
	for i := 0; i < count; i++ {
		angle := math.Pi * 2 * float64(i) / float64(count)
		speed := rng.Float64()*3 + 2
		particles.List = append(particles.List, components.Particle{
			Kind:  components.ParticleExplosion,
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Size:  rng.Float64()*4 + 4,
			Color: palette[rng.Intn(len(palette))],
		})
	}
}

func spawnSparkles(w donburi.World, x, y float64, c color.RGBA, count int) {
	particles := getParticles(w)
	if particles == nil {
		return
	}
	rng := particles.Rand
	for i := 0; i < count; i++ {
		angle := math.Pi * 2 * float64(i) / float64(count)
		particles.List = append(particles.List, components.Particle{
			Kind:          components.ParticleSparkle,
			X:             x,
			Y:             y,
			VX:            math.Cos(angle) * (rng.Float64() + 0.5),
			VY:            -(rng.Float64()*3 + 2),
			Life:          1,
			Size:          rng.Float64()*3 + 3,
			Rotation:      rng.Float64() * math.Pi * 2,
			RotationSpeed: (rng.Float64() - 0.5) * 0.3,
			Color:         c,
		})
	}
}
