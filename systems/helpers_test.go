package systems

import (
	"testing"
	"time"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var testEpoch = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func rectPtr(x, y, w, h float64) *gamemath.Rect {
	return &gamemath.Rect{X: x, Y: y, W: w, H: h}
}

// testRegistry builds a small pair of levels. The main level has a ground
// strip under the start spawn, a row of pickups on it and nothing else under
// x=2000, so the player can be dropped off the world there.
func testRegistry(t *testing.T, monsterSpawns ...leveldata.Point) *leveldata.Registry {
	t.Helper()

	main := &leveldata.LevelDef{
		ID:     leveldata.LevelMain,
		Width:  2600,
		Height: 600,
		Platforms: []leveldata.PlatformDef{
			{Rect: gamemath.Rect{X: 0, Y: 550, W: 400, H: 50}},
			{Rect: gamemath.Rect{X: 500, Y: 450, W: 200, H: 20}},
		},
		Collectibles: []leveldata.CollectibleDef{
			{Rect: gamemath.Rect{X: 150, Y: 500, W: 20, H: 20}, Kind: leveldata.Coin, Value: 10},
			{Rect: gamemath.Rect{X: 175, Y: 500, W: 20, H: 20}, Kind: leveldata.Gem, Value: 25},
			{Rect: gamemath.Rect{X: 300, Y: 500, W: 20, H: 20}, Kind: leveldata.Bomb, Damage: 0.5},
			{Rect: gamemath.Rect{X: 320, Y: 500, W: 20, H: 20}, Kind: leveldata.Bomb, Damage: 0.5},
		},
		Goal:          rectPtr(2450, 400, 50, 50),
		SecretTrigger: rectPtr(900, 0, 150, 200),
		MonsterSpawns: monsterSpawns,
		Spawns: map[string]leveldata.SpawnPoint{
			leveldata.SpawnStart:        {X: 100, Y: 100},
			leveldata.SpawnSecretReturn: {X: 900, Y: 300, CameraX: 600},
		},
	}
	secret := &leveldata.LevelDef{
		ID:     leveldata.LevelSecret,
		Width:  2600,
		Height: 600,
		Platforms: []leveldata.PlatformDef{
			{Rect: gamemath.Rect{X: 850, Y: 300, W: 300, H: 20}},
		},
		Collectibles: []leveldata.CollectibleDef{
			{Rect: gamemath.Rect{X: 1000, Y: 250, W: 20, H: 20}, Kind: leveldata.Gem, Value: 100},
		},
		Portal: rectPtr(1900, 50, 50, 50),
		Spawns: map[string]leveldata.SpawnPoint{
			leveldata.SpawnEntry: {X: 900, Y: 50, CameraX: 600},
		},
	}

	reg, err := leveldata.NewRegistry(main, secret)
	require.NoError(t, err)
	return reg
}

// scriptedInput holds a fixed set of actions each tick until changed.
type scriptedInput struct {
	held []cfg.ActionID
}

func (s *scriptedInput) system(w donburi.World) {
	SetHeldActions(w, s.held...)
}

func (s *scriptedInput) hold(ids ...cfg.ActionID) {
	s.held = ids
}

type testSim struct {
	*Simulation
	input *scriptedInput
	store *storage.Scores
}

func newTestSim(t *testing.T, monsterSpawns ...leveldata.Point) *testSim {
	t.Helper()
	input := &scriptedInput{}
	store := storage.NewScores(storage.NewMemory())
	sim, err := NewSimulation(Options{
		Registry: testRegistry(t, monsterSpawns...),
		Store:    store,
		Seed:     7,
		Clock:    func() time.Time { return testEpoch },
		Input:    input.system,
	})
	require.NoError(t, err)
	return &testSim{Simulation: sim, input: input, store: store}
}

func (s *testSim) ticks(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// press holds the actions for one tick and releases them on the next.
func (s *testSim) press(ids ...cfg.ActionID) {
	s.input.hold(ids...)
	s.Tick()
	s.input.hold()
	s.Tick()
}

func (s *testSim) player(t *testing.T) *donburi.Entry {
	t.Helper()
	entry, ok := GetPlayer(s.World)
	require.True(t, ok)
	return entry
}

func (s *testSim) session() *components.SessionData {
	return GetSession(s.World)
}

// teleport moves the player without touching its velocity.
func (s *testSim) teleport(t *testing.T, x, y float64) {
	obj := components.Object.Get(s.player(t))
	obj.X, obj.Y = x, y
	obj.Update()
}

// landPlayer ticks until the player rests on the ground strip.
func (s *testSim) landPlayer(t *testing.T) {
	t.Helper()
	physics := components.Physics.Get(s.player(t))
	for i := 0; i < 200 && !physics.OnGround; i++ {
		s.Tick()
	}
	require.True(t, physics.OnGround, "player never landed")
}

func countMonsters(w donburi.World) int {
	n := 0
	components.Monster.Each(w, func(*donburi.Entry) { n++ })
	return n
}
