package systems

import (
	"log"

	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
)

// checkSecretTrigger enters the secret level after a triple jump into the
// trigger zone above the third platform.
func checkSecretTrigger(w donburi.World, level *components.LevelData, session *components.SessionData, playerEntry *donburi.Entry) {
	if session.InSecretLevel() {
		return
	}
	if components.Player.Get(playerEntry).JumpCount != 3 {
		return
	}
	if !touchesZone(level, session, components.Object.Get(playerEntry), components.ZoneSecretTrigger) {
		return
	}

	if !switchLevel(w, level, session, playerEntry, leveldata.LevelSecret, leveldata.SpawnEntry) {
		return
	}
	components.SecretDiscovered.Publish(w, components.SecretDiscoveredEvent{})
}

// checkSecretPortal returns from the secret level through its portal.
func checkSecretPortal(w donburi.World, level *components.LevelData, session *components.SessionData, playerEntry *donburi.Entry) {
	if !session.InSecretLevel() {
		return
	}
	if !touchesZone(level, session, components.Object.Get(playerEntry), components.ZonePortal) {
		return
	}

	if !switchLevel(w, level, session, playerEntry, leveldata.LevelMain, leveldata.SpawnSecretReturn) {
		return
	}
	components.SecretReturned.Publish(w, components.SecretReturnedEvent{})
}

// checkGoal wins the session. The goal only exists outside the secret level.
func checkGoal(w donburi.World, level *components.LevelData, session *components.SessionData, obj *components.ObjectData) {
	if session.InSecretLevel() {
		return
	}
	if touchesZone(level, session, obj, components.ZoneGoal) {
		Win(w)
	}
}

// touchesZone reports whether obj strictly overlaps a zone of kind in the
// active level.
func touchesZone(level *components.LevelData, session *components.SessionData, obj *components.ObjectData, kind components.ZoneKind) bool {
	playerRect := obj.Rect()
	for _, entry := range level.Zones[session.ActiveLevel] {
		if components.Zone.Get(entry).Kind != kind {
			continue
		}
		if gamemath.Overlaps(playerRect, components.Object.Get(entry).Rect()) {
			return true
		}
	}
	return false
}

// switchLevel makes id the active level and teleports the player to the named
// spawn, zeroing velocity and the jump chain and placing the camera.
func switchLevel(w donburi.World, level *components.LevelData, session *components.SessionData, playerEntry *donburi.Entry, id leveldata.LevelID, spawnName string) bool {
	def := level.Registry.Get(id)
	if def == nil {
		log.Printf("Warning: Could not switch to level %s: not loaded", id)
		return false
	}
	spawn, ok := def.Spawn(spawnName)
	if !ok {
		log.Printf("Warning: Could not switch to level %s: no %q spawn", id, spawnName)
		return false
	}

	obj := components.Object.Get(playerEntry)
	if from := activeSpace(level, session); from != nil {
		from.Remove(obj.Object)
	}
	session.ActiveLevel = id

	obj.X, obj.Y = spawn.X, spawn.Y
	if to := activeSpace(level, session); to != nil {
		to.Add(obj.Object)
	}
	obj.Update()

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0
	components.Player.Get(playerEntry).JumpCount = 0

	if camera := GetCamera(w); camera != nil {
		camera.Position.X = spawn.CameraX
	}
	return true
}
