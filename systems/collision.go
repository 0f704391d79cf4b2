package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/yohamta/donburi"
)

// resolvePlatformCollisions pushes the player out of every overlapping
// platform, one platform at a time in level order. The collision side is
// classified from the position before this tick's displacement, so a body
// moving fast enough can pass through a thin platform.
func resolvePlatformCollisions(w donburi.World, platforms []*donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	for _, platformEntry := range platforms {
		p := components.Object.Get(platformEntry).Rect()
		if !gamemath.Overlaps(obj.Rect(), p) {
			continue
		}

		collisionX := obj.X + obj.W/2
		collisionY := obj.Y + obj.H/2

		switch {
		case physics.SpeedY > 0 && obj.Y+obj.H-physics.SpeedY <= p.Y:
			// Landing on top
			obj.Y = p.Y - obj.H
			physics.SpeedY = 0

			if !physics.WasOnGround {
				components.LandingImpact.Publish(w, components.LandingImpactEvent{X: collisionX, Y: obj.Y + obj.H})
			}

			physics.OnGround = true
			player.DoubleJumpAvailable = true
			player.HasDoubleJumped = false
			player.LastJumpPlatform = platformEntry
			player.JumpCount = 0

		case physics.SpeedY < 0 && obj.Y-physics.SpeedY >= p.Bottom():
			// Hitting from below
			obj.Y = p.Bottom()
			physics.SpeedY = 0
			components.Impact.Publish(w, components.ImpactEvent{X: collisionX, Y: obj.Y})

		default:
			// Side
			if physics.SpeedX > 0 {
				obj.X = p.X - obj.W
				components.Impact.Publish(w, components.ImpactEvent{X: obj.X + obj.W, Y: collisionY})
			} else if physics.SpeedX < 0 {
				obj.X = p.Right()
				components.Impact.Publish(w, components.ImpactEvent{X: obj.X, Y: collisionY})
			}
			physics.SpeedX = 0
		}
	}
}
