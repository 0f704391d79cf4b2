package systems

import (
	"math"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePlayer advances the player by one tick: jump input, movement,
// platform collisions, pickups, level triggers, fall-off, monster hits and
// finally the camera. Nothing runs once the session is over.
func UpdatePlayer(w donburi.World) {
	session := GetSession(w)
	level := GetLevel(w)
	if session == nil || level == nil || session.GameOver {
		return
	}
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}

	input := getOrCreateInput(w)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// The jump edge is sampled at the start of the tick, before integration.
	if GetAction(input, cfg.ActionJump).JustPressed {
		handleJump(w, player, physics, obj)
	}

	updateHorizontalMovement(input, player, physics)
	physics.SpeedY += cfg.Player.Gravity
	updateTrail(w, player, physics, obj)

	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	physics.WasOnGround = physics.OnGround
	physics.OnGround = false

	resolvePlatformCollisions(w, level.Platforms[session.ActiveLevel], player, physics, obj)
	obj.Update()

	checkCollectibles(w, level, session, obj)
	checkSecretTrigger(w, level, session, playerEntry)
	checkSecretPortal(w, level, session, playerEntry)
	checkGoal(w, level, session, obj)
	checkFallOff(w, level, session, playerEntry)
	checkMonsterHits(w, obj)

	UpdateCamera(w)
}

// handleJump applies the jump chain: ground jump, double jump, then a single
// stronger triple jump right after the double jump.
func handleJump(w donburi.World, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	cx, cy := obj.Rect().Center()

	switch {
	case physics.OnGround:
		physics.SpeedY = cfg.Player.JumpPower
		physics.OnGround = false
		player.DoubleJumpAvailable = true
		player.HasDoubleJumped = false
		player.JumpCount = 1
	case player.DoubleJumpAvailable && !player.HasDoubleJumped:
		physics.SpeedY = cfg.Player.JumpPower
		player.HasDoubleJumped = true
		player.DoubleJumpAvailable = false
		player.JumpCount = 2
		components.DoubleJump.Publish(w, components.DoubleJumpEvent{X: cx, Y: cy})
	case player.JumpCount == 2 && !player.DoubleJumpAvailable:
		physics.SpeedY = cfg.Player.JumpPower * cfg.Player.TripleJumpMultiplier
		player.JumpCount = 3
		components.TripleJump.Publish(w, components.TripleJumpEvent{X: cx, Y: cy})
	}
}

func updateHorizontalMovement(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	switch {
	case GetAction(input, cfg.ActionMoveLeft).Pressed:
		physics.SpeedX = -cfg.Player.MoveSpeed
		player.FacingRight = false
	case GetAction(input, cfg.ActionMoveRight).Pressed:
		physics.SpeedX = cfg.Player.MoveSpeed
		player.FacingRight = true
	default:
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, cfg.Player.Friction)
	}
}

func updateTrail(w donburi.World, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	player.TrailTimer++
	if math.Abs(physics.SpeedX) > cfg.Player.TrailMinSpeed && player.TrailTimer >= cfg.Player.TrailInterval {
		cx, cy := obj.Rect().Center()
		components.Trail.Publish(w, components.TrailEvent{X: cx, Y: cy})
		player.TrailTimer = 0
	}
}
