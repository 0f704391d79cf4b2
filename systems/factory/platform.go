package factory

import (
	"github.com/danigirl329/kiro-game-challenge/archetypes"
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/danigirl329/kiro-game-challenge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, space *resolv.Space, level leveldata.LevelID, index int, def leveldata.PlatformDef) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	object := newStaticObject(space, def.Rect, tags.ResolvSolid)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	components.Platform.SetValue(platform, components.PlatformData{
		Level: level,
		Index: index,
		Color: def.Color,
		ID:    def.ID,
	})

	return platform
}

func CreateCollectible(w donburi.World, space *resolv.Space, level leveldata.LevelID, index int, def leveldata.CollectibleDef) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(w)

	object := newStaticObject(space, def.Rect, tags.ResolvCollectible)
	object.Data = collectible
	components.Object.SetValue(collectible, components.ObjectData{Object: object})
	components.Collectible.SetValue(collectible, components.CollectibleData{
		Level:  level,
		Index:  index,
		Kind:   def.Kind,
		Value:  def.Value,
		Damage: def.Damage,
	})

	return collectible
}

func CreateZone(w donburi.World, space *resolv.Space, level leveldata.LevelID, kind components.ZoneKind, r gamemath.Rect) *donburi.Entry {
	zone := archetypes.Zone.Spawn(w)

	object := newStaticObject(space, r, tags.ResolvZone)
	object.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: object})
	components.Zone.SetValue(zone, components.ZoneData{
		Level: level,
		Kind:  kind,
	})

	return zone
}

func newStaticObject(space *resolv.Space, r gamemath.Rect, tag string) *resolv.Object {
	object := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	object.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	space.Add(object)
	return object
}
