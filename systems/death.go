package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
)

// checkFallOff costs a life once the player drops below the level.
func checkFallOff(w donburi.World, level *components.LevelData, session *components.SessionData, playerEntry *donburi.Entry) {
	def := level.Registry.Get(session.ActiveLevel)
	if def == nil {
		return
	}
	if components.Object.Get(playerEntry).Y > def.Height+cfg.Session.FallMargin {
		LoseLife(w)
	}
}

// LoseLife takes one life and respawns the player in the current level, or
// ends the session when none are left.
func LoseLife(w donburi.World) {
	Damage(w, 1)
	session := GetSession(w)
	if session == nil || session.State.Terminal() {
		return
	}
	if playerEntry, ok := GetPlayer(w); ok {
		RespawnPlayer(w, playerEntry)
	}
}

// RespawnPlayer puts the player back at the respawn point of the active level.
// The jump chain is left alone; the next landing clears it.
func RespawnPlayer(w donburi.World, playerEntry *donburi.Entry) {
	def := ActiveLevelDef(w)
	if def == nil {
		return
	}
	spawn, ok := def.Spawn(respawnPointName(def.ID))
	if !ok {
		return
	}

	obj := components.Object.Get(playerEntry)
	obj.X, obj.Y = spawn.X, spawn.Y
	obj.Update()

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	player := components.Player.Get(playerEntry)
	player.DoubleJumpAvailable = true
	player.HasDoubleJumped = false

	if camera := GetCamera(w); camera != nil {
		camera.Position.X = spawn.CameraX
	}
}

func respawnPointName(id leveldata.LevelID) string {
	if id == leveldata.LevelSecret {
		return leveldata.SpawnEntry
	}
	return leveldata.SpawnStart
}
