package factory

import (
	"github.com/danigirl329/kiro-game-challenge/archetypes"
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player at (x, y) inside space.
func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	space.Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		FacingRight:         true,
		DoubleJumpAvailable: true,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	return player
}
