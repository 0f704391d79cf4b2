package components

import (
	"image/color"

	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Level leveldata.LevelID
	Index int
	Color color.RGBA
	ID    string
}

var Platform = donburi.NewComponentType[PlatformData]()
