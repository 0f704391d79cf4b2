package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX      float64
	SpeedY      float64
	OnGround    bool
	WasOnGround bool // OnGround as it was before this tick's collisions
}

var Physics = donburi.NewComponentType[PhysicsData]()
