package factory

import (
	"github.com/danigirl329/kiro-game-challenge/archetypes"
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/yohamta/donburi"
)

// CreateMessage spawns the banner singleton showing text.
func CreateMessage(w donburi.World, text string) *donburi.Entry {
	entry := archetypes.Message.Spawn(w)
	components.MessageState.SetValue(entry, components.MessageStateData{
		Text:  text,
		Alpha: 1,
	})
	return entry
}
