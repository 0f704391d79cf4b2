package client

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const pulseFrames = 45

// pulse ping-pongs between 0 and 1.
type pulse struct {
	tween   *gween.Tween
	falling bool
	current float32
}

var portalPulse = &pulse{}

func (p *pulse) restart() {
	from, to := float32(0), float32(1)
	if p.falling {
		from, to = 1, 0
	}
	p.tween = gween.New(from, to, pulseFrames, ease.InOutSine)
}

func (p *pulse) update() {
	if p.tween == nil {
		p.restart()
	}
	value, done := p.tween.Update(1)
	p.current = value
	if done {
		p.falling = !p.falling
		p.restart()
	}
}

func (p *pulse) value() float64 {
	return float64(p.current)
}

// UpdatePortalPulse advances the portal glow. It runs even after the session
// ends.
func UpdatePortalPulse(_ *ecs.ECS) {
	portalPulse.update()
}
