package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/danigirl329/kiro-game-challenge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GetSession returns the session singleton, or nil before setup.
func GetSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// GetLevel returns the level singleton, or nil before setup.
func GetLevel(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// GetCamera returns the camera singleton, or nil before setup.
func GetCamera(w donburi.World) *components.CameraData {
	entry, ok := components.Camera.First(w)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

// GetPlayer returns the player entry.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// ActiveLevelDef returns the definition of the level the player is in.
func ActiveLevelDef(w donburi.World) *leveldata.LevelDef {
	level := GetLevel(w)
	session := GetSession(w)
	if level == nil || session == nil {
		return nil
	}
	return level.Registry.Get(session.ActiveLevel)
}

func activeSpace(level *components.LevelData, session *components.SessionData) *resolv.Space {
	return level.Spaces[session.ActiveLevel]
}
