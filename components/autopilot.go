package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// AutopilotData drives the player without a keyboard, for the headless runner.
type AutopilotData struct {
	Rand         *rand.Rand
	JumpCooldown int
	HoldJump     int // ticks the jump key stays down
	TapRestart   bool
	Restarts     int // restarts left once the session is over
}

var Autopilot = donburi.NewComponentType[AutopilotData]()
