package components

import (
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's current bounds.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Bounds(o.Object)
}

var Object = donburi.NewComponentType[ObjectData]()
