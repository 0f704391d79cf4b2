package systems

import (
	"testing"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCoinAndGemAddScoreOnce(t *testing.T) {
	sim := newTestSim(t)

	var collected []components.CollectedEvent
	components.Collected.Subscribe(sim.World, func(_ donburi.World, e components.CollectedEvent) {
		collected = append(collected, e)
	})

	sim.teleport(t, 140, 500)
	sim.Tick()
	assert.Equal(t, 35, sim.session().Score)
	require.Len(t, collected, 2)
	assert.Equal(t, leveldata.Coin, collected[0].Kind)
	assert.Equal(t, leveldata.Gem, collected[1].Kind)
	assert.Equal(t, 160.0, collected[0].X)
	assert.Equal(t, cfg.Particles.CoinSparkles+cfg.Particles.GemSparkles,
		CountParticles(sim.World, components.ParticleSparkle))

	sim.ticks(5)
	assert.Equal(t, 35, sim.session().Score)
	assert.Len(t, collected, 2)

	level := GetLevel(sim.World)
	for i, entry := range level.Collectibles[leveldata.LevelMain] {
		assert.Equal(t, i < 2, components.Collectible.Get(entry).Collected, "item %d", i)
	}
}

func TestBombsCostHalfALifeEach(t *testing.T) {
	sim := newTestSim(t)

	sim.teleport(t, 290, 500)
	sim.Tick()
	assert.Equal(t, 2.0, sim.session().Lives)
	assert.Equal(t, 0, sim.session().Score)
	assert.Equal(t, cfg.SessionPlaying, sim.session().State)

	sim.ticks(3)
	assert.Equal(t, 2.0, sim.session().Lives)
}

func TestTouchingIsNotCollecting(t *testing.T) {
	sim := newTestSim(t)

	// the right edge lines up exactly with the coin's left edge
	sim.teleport(t, 100, 500)
	sim.Tick()
	assert.Equal(t, 0, sim.session().Score)
}

func TestSubPixelOverlapAcrossCellEdgeCollects(t *testing.T) {
	sim := newTestSim(t)

	// right edge at 150.5 reaches half a pixel into the coin that starts on
	// the 150 cell boundary
	sim.teleport(t, 100.5, 500)
	sim.Tick()
	assert.Equal(t, 10, sim.session().Score)

	level := GetLevel(sim.World)
	coins := level.Collectibles[leveldata.LevelMain]
	assert.True(t, components.Collectible.Get(coins[0]).Collected)
	assert.False(t, components.Collectible.Get(coins[1]).Collected)
}

func TestSecretLevelPickupsOnlyCountThere(t *testing.T) {
	sim := newTestSim(t)

	// the secret gem's spot in the main level is empty air
	sim.teleport(t, 990, 240)
	sim.Tick()
	assert.Equal(t, 0, sim.session().Score)

	entry := sim.player(t)
	level := GetLevel(sim.World)
	require.True(t, switchLevel(sim.World, level, sim.session(), entry, leveldata.LevelSecret, leveldata.SpawnEntry))
	sim.teleport(t, 990, 240)
	sim.Tick()
	assert.Equal(t, 100, sim.session().Score)
}
