package factory

import (
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/solarlune/resolv"
)

const spaceCellSize = 50

// CreateSpace builds the resolv space covering one level.
func CreateSpace(def *leveldata.LevelDef) *resolv.Space {
	return resolv.NewSpace(int(def.Width), int(def.Height), spaceCellSize, spaceCellSize)
}
