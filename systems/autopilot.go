package systems

import (
	"math/rand"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/tags"
	"github.com/yohamta/donburi"
)

// NewAutopilot returns an input system that runs right, jumps over gaps and
// walls and restarts finished sessions up to restarts times.
func NewAutopilot(seed int64, restarts int) System {
	return func(w donburi.World) {
		pilot := getOrCreateAutopilot(w, seed, restarts)
		held := autopilotActions(w, pilot)
		SetHeldActions(w, held...)
	}
}

func getOrCreateAutopilot(w donburi.World, seed int64, restarts int) *components.AutopilotData {
	entry, ok := components.Autopilot.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Autopilot))
		components.Autopilot.SetValue(entry, components.AutopilotData{
			Rand:     rand.New(rand.NewSource(seed)),
			Restarts: restarts,
		})
	}
	return components.Autopilot.Get(entry)
}

func autopilotActions(w donburi.World, pilot *components.AutopilotData) []cfg.ActionID {
	session := GetSession(w)
	playerEntry, ok := GetPlayer(w)
	if session == nil || !ok {
		return nil
	}

	if session.State.Terminal() {
		// alternate so the restart key produces an edge
		pilot.TapRestart = !pilot.TapRestart
		if pilot.Restarts > 0 && pilot.TapRestart {
			pilot.Restarts--
			return []cfg.ActionID{cfg.ActionRestart}
		}
		return nil
	}

	held := []cfg.ActionID{cfg.ActionMoveRight}

	if pilot.JumpCooldown > 0 {
		pilot.JumpCooldown--
	}
	if pilot.HoldJump > 0 {
		pilot.HoldJump--
		return append(held, cfg.ActionJump)
	}

	obj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	wantJump := false
	switch {
	case physics.OnGround && pilot.JumpCooldown == 0:
		lookahead := obj.W
		gapAhead := obj.Check(lookahead, 1, tags.ResolvSolid) == nil
		wallAhead := obj.Check(cfg.Player.MoveSpeed, -1, tags.ResolvSolid) != nil
		wantJump = gapAhead || wallAhead || pilot.Rand.Float64() < 0.02
	case !physics.OnGround && physics.SpeedY > 0 && player.JumpCount < 3:
		// chain the next jump on the way down
		wantJump = pilot.Rand.Float64() < 0.1
	}

	if wantJump {
		pilot.JumpCooldown = 10
		pilot.HoldJump = 2
		return append(held, cfg.ActionJump)
	}
	return held
}
