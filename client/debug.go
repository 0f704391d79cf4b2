package client

import (
	"fmt"
	"image/color"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/systems"
	"github.com/danigirl329/kiro-game-challenge/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every object in the active level's space, plus the
// monsters, when hitboxes are enabled.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	level := systems.GetLevel(e.World)
	session := systems.GetSession(e.World)
	if level == nil || session == nil {
		return
	}
	view := viewport(e.World, screen)

	if space := level.Spaces[session.ActiveLevel]; space != nil {
		for _, obj := range space.Objects() {
			r := gamemath.Bounds(obj)
			if !visible(view, r) {
				continue
			}
			strokeRect(screen, view, r, hitboxColor(obj))
		}
	}

	tags.Monster.Each(e.World, func(entry *donburi.Entry) {
		strokeRect(screen, view, components.Object.Get(entry).Rect(), color.RGBA{255, 0, 0, 255})
	})

	if entry, ok := systems.GetPlayer(e.World); ok {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)
		ebitenutil.DebugPrintAt(screen, debugLine(session, player, physics), 10, screen.Bounds().Dy()-20)
	}
}

func hitboxColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return color.RGBA{100, 100, 100, 255}
	case obj.HasTags(tags.ResolvPlayer):
		return color.RGBA{0, 0, 255, 255}
	case obj.HasTags(tags.ResolvZone):
		return color.RGBA{0, 255, 0, 255}
	case obj.HasTags(tags.ResolvCollectible):
		return color.RGBA{255, 215, 0, 255}
	}
	return color.RGBA{0, 255, 255, 255}
}

func strokeRect(screen *ebiten.Image, view, r gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X-view.X), float32(r.Y-view.Y), float32(r.W), float32(r.H), 1, c, false)
}

func debugLine(session *components.SessionData, player *components.PlayerData, physics *components.PhysicsData) string {
	return fmt.Sprintf("level=%s state=%s jumps=%d ground=%t vx=%.2f vy=%.2f",
		session.ActiveLevel, session.State, player.JumpCount, physics.OnGround, physics.SpeedX, physics.SpeedY)
}
