package systems

import (
	"testing"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallingOffCostsALifeAndRespawns(t *testing.T) {
	sim := newTestSim(t)
	entry := sim.player(t)
	components.Physics.Get(entry).SpeedX = 3
	components.Player.Get(entry).JumpCount = 2

	sim.teleport(t, 2000, 600+cfg.Session.FallMargin)
	sim.Tick()

	session := sim.session()
	assert.Equal(t, cfg.Session.StartingLives-1, session.Lives)
	assert.Equal(t, cfg.SessionPlaying, session.State)

	obj := components.Object.Get(entry)
	assert.Equal(t, 100.0, obj.X)
	assert.Equal(t, 100.0, obj.Y)
	assert.Zero(t, components.Physics.Get(entry).SpeedX)
	assert.Zero(t, components.Physics.Get(entry).SpeedY)
	assert.True(t, components.Player.Get(entry).DoubleJumpAvailable)
	assert.Equal(t, 2, components.Player.Get(entry).JumpCount, "respawn keeps the jump chain")
}

func TestFallingOffTheSecretLevelRespawnsAtItsEntry(t *testing.T) {
	sim := newTestSim(t)
	entry := sim.player(t)
	require.True(t, switchLevel(sim.World, GetLevel(sim.World), sim.session(), entry, leveldata.LevelSecret, leveldata.SpawnEntry))

	sim.teleport(t, 2000, 750)
	sim.Tick()

	obj := components.Object.Get(entry)
	assert.Equal(t, leveldata.LevelSecret, sim.session().ActiveLevel)
	assert.Equal(t, 900.0, obj.X)
	assert.Equal(t, 50.0, obj.Y)
}

func TestLosingLastLifeEndsSessionAndRecordsOnce(t *testing.T) {
	sim := newTestSim(t)
	sim.session().Lives = 1
	sim.session().Score = 15

	sim.teleport(t, 2000, 750)
	sim.Tick()

	session := sim.session()
	assert.Equal(t, cfg.SessionLost, session.State)
	assert.True(t, session.GameOver)
	assert.False(t, session.Won)
	assert.Equal(t, cfg.Message.Lose, getMessage(sim.World).Text)
	assert.Equal(t, components.MessageLose, getMessage(sim.World).Kind)

	sim.ticks(30)
	Damage(sim.World, 1)
	Win(sim.World)
	assert.Equal(t, cfg.SessionLost, sim.session().State)

	history := sim.store.ScoreHistory()
	require.Len(t, history, 1)
	assert.Equal(t, 15, history[0].Score)
	assert.False(t, history[0].Won)
}

func TestLosingCanSetHighScore(t *testing.T) {
	sim := newTestSim(t)
	sim.session().Score = 5
	Damage(sim.World, cfg.Session.StartingLives)

	assert.True(t, sim.session().IsNewHighScore)
	assert.Equal(t, 5, sim.store.HighScore())
}

func TestSessionTicksOnlyWhilePlaying(t *testing.T) {
	sim := newTestSim(t)
	sim.ticks(10)
	assert.Equal(t, 10, sim.session().Ticks)

	Damage(sim.World, cfg.Session.StartingLives)
	sim.ticks(10)
	assert.Equal(t, 10, sim.session().Ticks)
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	sim := newTestSim(t)
	sim.teleport(t, 140, 500)
	sim.Tick()
	require.Equal(t, 35, sim.session().Score)

	sim.press(cfg.ActionRestart)
	assert.Equal(t, 35, sim.session().Score)
	assert.False(t, Restart(sim.World))
}

func TestRestartResetsTheWorld(t *testing.T) {
	sim := newTestSim(t, leveldata.Point{X: 2000, Y: 550})
	entry := sim.player(t)

	sim.teleport(t, 140, 500)
	sim.Tick()
	sim.input.hold(cfg.ActionMoveLeft)
	sim.Tick()
	sim.input.hold()
	require.False(t, components.Player.Get(entry).FacingRight)

	sim.ticks(cfg.Monster.SpawnInterval * 3)
	require.True(t, switchLevel(sim.World, GetLevel(sim.World), sim.session(), entry, leveldata.LevelSecret, leveldata.SpawnEntry))
	Damage(sim.World, cfg.Session.StartingLives)
	require.True(t, sim.session().GameOver)

	sim.press(cfg.ActionRestart)

	session := sim.session()
	assert.Equal(t, cfg.SessionPlaying, session.State)
	assert.False(t, session.GameOver)
	assert.False(t, session.Won)
	assert.False(t, session.IsNewHighScore)
	assert.False(t, session.Recorded)
	assert.Equal(t, cfg.Session.StartingLives, session.Lives)
	assert.Equal(t, leveldata.LevelMain, session.ActiveLevel)
	assert.Equal(t, 35, session.HighScore, "high score is read back from the store")

	// one tick has run since the restart
	assert.Equal(t, 1, session.Ticks)
	obj := components.Object.Get(entry)
	assert.InDelta(t, 100.0, obj.X, 1e-9)
	assert.InDelta(t, 100+cfg.Player.Gravity, obj.Y, 1e-9)
	assert.Same(t, GetLevel(sim.World).Spaces[leveldata.LevelMain], obj.Space)

	player := components.Player.Get(entry)
	assert.Equal(t, 0, player.JumpCount)
	assert.True(t, player.DoubleJumpAvailable)
	assert.Nil(t, player.LastJumpPlatform)
	assert.False(t, player.FacingRight, "facing survives a restart")

	for _, entries := range GetLevel(sim.World).Collectibles {
		for _, e := range entries {
			assert.False(t, components.Collectible.Get(e).Collected)
		}
	}
	assert.Zero(t, countMonsters(sim.World))
	assert.Equal(t, cfg.Message.StartHint, getMessage(sim.World).Text)
	assert.Positive(t, CountParticles(sim.World, components.ParticleConfetti), "restart keeps live particles")
}

func TestRestartedSessionCollectsAgain(t *testing.T) {
	sim := newTestSim(t)
	sim.teleport(t, 140, 500)
	sim.Tick()
	Damage(sim.World, cfg.Session.StartingLives)
	sim.press(cfg.ActionRestart)
	require.Equal(t, cfg.SessionPlaying, sim.session().State)

	sim.teleport(t, 140, 500)
	sim.Tick()
	assert.Equal(t, 35, sim.session().Score)
}
