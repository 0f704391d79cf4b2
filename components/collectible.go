package components

import (
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
)

type CollectibleData struct {
	Level     leveldata.LevelID
	Index     int
	Kind      leveldata.CollectibleKind
	Value     int
	Damage    float64
	Collected bool // one-way until restart
}

var Collectible = donburi.NewComponentType[CollectibleData]()
