package systems

import (
	"testing"

	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/danigirl329/kiro-game-challenge/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type collisionFixture struct {
	w        donburi.World
	platform *donburi.Entry
	player   *components.PlayerData
	physics  *components.PhysicsData
	obj      *components.ObjectData
	landings int
	impacts  int
}

func newCollisionFixture(t *testing.T, platform gamemath.Rect, x, y, vx, vy float64) *collisionFixture {
	t.Helper()
	w := donburi.NewWorld()
	def := &leveldata.LevelDef{Width: 800, Height: 600}
	space := factory.CreateSpace(def)

	f := &collisionFixture{w: w}
	f.platform = factory.CreatePlatform(w, space, leveldata.LevelMain, 0, leveldata.PlatformDef{Rect: platform})
	playerEntry := factory.CreatePlayer(w, space, x, y)
	f.player = components.Player.Get(playerEntry)
	f.physics = components.Physics.Get(playerEntry)
	f.obj = components.Object.Get(playerEntry)
	f.physics.SpeedX = vx
	f.physics.SpeedY = vy

	components.LandingImpact.Subscribe(w, func(donburi.World, components.LandingImpactEvent) { f.landings++ })
	components.Impact.Subscribe(w, func(donburi.World, components.ImpactEvent) { f.impacts++ })
	require.NotNil(t, f.obj.Object)
	return f
}

func (f *collisionFixture) resolve() {
	resolvePlatformCollisions(f.w, []*donburi.Entry{f.platform}, f.player, f.physics, f.obj)
	events.ProcessAllEvents(f.w)
}

func TestLandingOnTop(t *testing.T) {
	f := newCollisionFixture(t, gamemath.Rect{X: 0, Y: 550, W: 400, H: 50}, 100, 505, 0, 6)
	f.player.JumpCount = 3
	f.resolve()

	assert.Equal(t, 500.0, f.obj.Y)
	assert.Zero(t, f.physics.SpeedY)
	assert.True(t, f.physics.OnGround)
	assert.Equal(t, 0, f.player.JumpCount)
	assert.Same(t, f.platform, f.player.LastJumpPlatform)
	assert.Equal(t, 1, f.landings)
}

func TestLandingWhileAlreadyGroundedIsQuiet(t *testing.T) {
	f := newCollisionFixture(t, gamemath.Rect{X: 0, Y: 550, W: 400, H: 50}, 100, 500.5, 0, 0.5)
	f.physics.WasOnGround = true
	f.resolve()

	assert.True(t, f.physics.OnGround)
	assert.Zero(t, f.landings)
}

func TestHittingCeiling(t *testing.T) {
	f := newCollisionFixture(t, gamemath.Rect{X: 0, Y: 200, W: 400, H: 20}, 100, 215, 0, -5)
	f.player.JumpCount = 2
	f.resolve()

	assert.Equal(t, 220.0, f.obj.Y)
	assert.Zero(t, f.physics.SpeedY)
	assert.False(t, f.physics.OnGround)
	assert.Equal(t, 2, f.player.JumpCount, "only landings reset the chain")
	assert.Equal(t, 1, f.impacts)
}

func TestSideCollision(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		wantX  float64
		impact int
	}{
		{name: "moving right", x: 155, vx: 5, wantX: 150, impact: 1},
		{name: "moving left", x: 245, vx: -5, wantX: 250, impact: 1},
		{name: "standing still", x: 155, vx: 0, wantX: 155},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCollisionFixture(t, gamemath.Rect{X: 200, Y: 400, W: 50, H: 100}, tt.x, 420, tt.vx, 0.5)
			f.resolve()

			assert.Equal(t, tt.wantX, f.obj.X)
			assert.Zero(t, f.physics.SpeedX)
			assert.Equal(t, tt.impact, f.impacts)
		})
	}
}

func TestFastBodyTunnelsThroughThinPlatform(t *testing.T) {
	// already past the platform after this tick's displacement
	f := newCollisionFixture(t, gamemath.Rect{X: 0, Y: 300, W: 400, H: 10}, 100, 320, 0, 60)
	f.resolve()

	assert.Equal(t, 320.0, f.obj.Y)
	assert.Equal(t, 60.0, f.physics.SpeedY)
	assert.False(t, f.physics.OnGround)
}
