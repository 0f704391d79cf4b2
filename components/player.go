package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FacingRight bool

	// Jump chain: 0 grounded, 1 after the ground jump, 2 after the double
	// jump, 3 after the triple jump. Only a landing resets it.
	JumpCount           int
	DoubleJumpAvailable bool
	HasDoubleJumped     bool

	LastJumpPlatform *donburi.Entry // informational only
	TrailTimer       int
}

var Player = donburi.NewComponentType[PlayerData]()
