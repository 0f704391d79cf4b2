package factory

import (
	"math/rand"

	"github.com/danigirl329/kiro-game-challenge/archetypes"
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateMonster spawns a fresh rising monster whose top-left starts at the anchor.
func CreateMonster(w donburi.World, anchor leveldata.Point) *donburi.Entry {
	monster := archetypes.Monster.Spawn(w)

	obj := resolv.NewObject(anchor.X, anchor.Y, cfg.Monster.Width, cfg.Monster.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Monster.Width, cfg.Monster.Height))
	obj.Data = monster
	components.Object.SetValue(monster, components.ObjectData{Object: obj})

	components.Monster.SetValue(monster, components.MonsterData{
		Phase:     cfg.MonsterRising,
		Active:    true,
		AnchorY:   anchor.Y,
		RiseSpeed: cfg.Monster.RiseSpeed,
	})

	return monster
}

func CreateMonsterSpawner(w donburi.World, anchors []leveldata.Point, rng *rand.Rand) *donburi.Entry {
	spawner := archetypes.MonsterSpawner.Spawn(w)
	components.MonsterSpawner.SetValue(spawner, components.MonsterSpawnerData{
		Rand:    rng,
		Anchors: append([]leveldata.Point(nil), anchors...),
	})
	return spawner
}
