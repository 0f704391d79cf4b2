package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the camera toward keeping the player a third of the way
// into the viewport, clamped to the level. The view never scrolls vertically.
func UpdateCamera(w donburi.World) {
	camera := GetCamera(w)
	def := ActiveLevelDef(w)
	playerEntry, ok := GetPlayer(w)
	if camera == nil || def == nil || !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	screenWidth := float64(config.C.Width)
	targetX := playerObject.X - screenWidth/config.Camera.TargetDivisor

	camera.Position.X = gamemath.Approach(camera.Position.X, targetX, config.Camera.FollowSmoothing)
	camera.Position.X = gamemath.Clamp(camera.Position.X, 0, def.Width-screenWidth)
	camera.Position.Y = 0
}
