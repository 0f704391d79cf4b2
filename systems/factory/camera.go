package factory

import (
	"github.com/danigirl329/kiro-game-challenge/archetypes"
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
