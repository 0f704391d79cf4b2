package systems

import (
	"testing"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretTriggerNeedsTripleJump(t *testing.T) {
	tests := []struct {
		name      string
		jumpCount int
		x, y      float64
		inSecret  bool
		wantEnter bool
	}{
		{name: "triple jump inside the zone", jumpCount: 3, x: 950, y: 100, wantEnter: true},
		{name: "double jump", jumpCount: 2, x: 950, y: 100},
		{name: "outside the zone", jumpCount: 3, x: 1200, y: 100},
		{name: "already in the secret level", jumpCount: 3, x: 950, y: 100, inSecret: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSim(t)
			entry := sim.player(t)
			if tt.inSecret {
				require.True(t, switchLevel(sim.World, GetLevel(sim.World), sim.session(), entry, leveldata.LevelSecret, leveldata.SpawnEntry))
			}
			components.Player.Get(entry).JumpCount = tt.jumpCount
			sim.teleport(t, tt.x, tt.y)
			sim.Tick()

			obj := components.Object.Get(entry)
			if !tt.wantEnter {
				if !tt.inSecret {
					assert.Equal(t, leveldata.LevelMain, sim.session().ActiveLevel)
				}
				assert.Zero(t, CountParticles(sim.World, components.ParticleConfetti))
				return
			}

			assert.Equal(t, leveldata.LevelSecret, sim.session().ActiveLevel)
			assert.Equal(t, 900.0, obj.X)
			assert.Equal(t, 50.0, obj.Y)
			assert.Zero(t, components.Physics.Get(entry).SpeedX)
			assert.Zero(t, components.Physics.Get(entry).SpeedY)
			assert.Equal(t, 0, components.Player.Get(entry).JumpCount)
			// the camera starts easing toward the player right away
			assert.InDelta(t, 600+(900-800.0/3-600)*cfg.Camera.FollowSmoothing, GetCamera(sim.World).Position.X, 1e-9)
			assert.Equal(t, cfg.Particles.SecretConfetti, CountParticles(sim.World, components.ParticleConfetti))
			assert.Equal(t, cfg.Message.SecretFound, getMessage(sim.World).Text)
		})
	}
}

func TestSecretMessageFollowUp(t *testing.T) {
	sim := newTestSim(t)
	entry := sim.player(t)
	components.Player.Get(entry).JumpCount = 3
	sim.teleport(t, 950, 100)
	sim.Tick()
	require.True(t, sim.session().InSecretLevel())

	// the trigger tick already counted down once
	sim.ticks(cfg.Message.FollowUpDelay - 2)
	assert.Equal(t, cfg.Message.SecretFound, getMessage(sim.World).Text)
	sim.Tick()
	msg := getMessage(sim.World)
	assert.Equal(t, cfg.Message.SecretHint, msg.Text)
	assert.Equal(t, components.MessageInfo, msg.Kind)
}

func TestPortalReturnsToMainLevel(t *testing.T) {
	sim := newTestSim(t)
	entry := sim.player(t)
	level := GetLevel(sim.World)
	require.True(t, switchLevel(sim.World, level, sim.session(), entry, leveldata.LevelSecret, leveldata.SpawnEntry))

	sim.teleport(t, 1900, 50)
	sim.Tick()

	obj := components.Object.Get(entry)
	assert.Equal(t, leveldata.LevelMain, sim.session().ActiveLevel)
	assert.Equal(t, 900.0, obj.X)
	assert.Equal(t, 300.0, obj.Y)
	assert.Equal(t, cfg.Message.SecretReturn, getMessage(sim.World).Text)

	// the player object moved between the level spaces
	assert.Same(t, level.Spaces[leveldata.LevelMain], obj.Space)
}

func TestPortalIgnoredInMainLevel(t *testing.T) {
	sim := newTestSim(t)
	sim.teleport(t, 1900, 50)
	sim.Tick()
	assert.Equal(t, leveldata.LevelMain, sim.session().ActiveLevel)
	assert.NotEqual(t, 300.0, components.Object.Get(sim.player(t)).Y)
}

func TestGoalWins(t *testing.T) {
	sim := newTestSim(t)
	sim.session().Score = 40

	sim.teleport(t, 2450, 400)
	sim.Tick()

	session := sim.session()
	assert.Equal(t, cfg.SessionWon, session.State)
	assert.True(t, session.GameOver)
	assert.True(t, session.Won)
	assert.True(t, session.IsNewHighScore)
	assert.Equal(t, 40, session.HighScore)
	assert.Equal(t, 40, sim.store.HighScore())
	assert.Equal(t, cfg.Message.WinHighScore, getMessage(sim.World).Text)
	assert.Equal(t, cfg.Particles.HighScoreConfetti, CountParticles(sim.World, components.ParticleConfetti))

	history := sim.store.ScoreHistory()
	require.Len(t, history, 1)
	assert.True(t, history[0].Won)
	assert.Equal(t, testEpoch.UnixMilli(), history[0].Timestamp)
}

func TestZoneSubPixelOverlapAcrossCellEdge(t *testing.T) {
	t.Run("goal", func(t *testing.T) {
		sim := newTestSim(t)

		// right edge at 2450.5 against the goal starting on the 2450 boundary
		sim.teleport(t, 2400.5, 400)
		sim.Tick()
		assert.Equal(t, cfg.SessionWon, sim.session().State)
		assert.True(t, sim.session().Won)
	})

	t.Run("portal", func(t *testing.T) {
		sim := newTestSim(t)
		entry := sim.player(t)
		require.True(t, switchLevel(sim.World, GetLevel(sim.World), sim.session(), entry, leveldata.LevelSecret, leveldata.SpawnEntry))

		sim.teleport(t, 1850.5, 50)
		sim.Tick()
		assert.Equal(t, leveldata.LevelMain, sim.session().ActiveLevel)
	})
}

func TestGoalIgnoredInSecretLevel(t *testing.T) {
	sim := newTestSim(t)
	entry := sim.player(t)
	require.True(t, switchLevel(sim.World, GetLevel(sim.World), sim.session(), entry, leveldata.LevelSecret, leveldata.SpawnEntry))

	sim.teleport(t, 2450, 400)
	sim.Tick()
	assert.Equal(t, cfg.SessionPlaying, sim.session().State)
}
