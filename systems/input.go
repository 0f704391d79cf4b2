package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/yohamta/donburi"
)

func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// BeginInputFrame swaps the input buffers and clears the current frame.
// Every input source calls it once per tick before setting held actions.
func BeginInputFrame(w donburi.World) *components.InputData {
	input := getOrCreateInput(w)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	return input
}

// SetHeldActions starts a new input frame with exactly the given actions held.
func SetHeldActions(w donburi.World, held ...cfg.ActionID) {
	input := BeginInputFrame(w)
	for _, id := range held {
		input.Current[id] = true
	}
}

// GetAction derives the temporal state of an action from the two frames.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	current := input.Current[id]
	previous := input.Previous[id]
	return components.ActionState{
		Pressed:      current,
		JustPressed:  current && !previous,
		JustReleased: !current && previous,
	}
}

// GetInput returns the input singleton, creating it on first use.
func GetInput(w donburi.World) *components.InputData {
	return getOrCreateInput(w)
}
