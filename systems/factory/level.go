package factory

import (
	"github.com/danigirl329/kiro-game-challenge/archetypes"
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level singleton and the static entities of every
// level in the registry.
func CreateLevel(w donburi.World, reg *leveldata.Registry) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	levelData := &components.LevelData{
		Registry:     reg,
		Platforms:    make(map[leveldata.LevelID][]*donburi.Entry),
		Collectibles: make(map[leveldata.LevelID][]*donburi.Entry),
		Zones:        make(map[leveldata.LevelID][]*donburi.Entry),
		Spaces:       make(map[leveldata.LevelID]*resolv.Space),
	}

	for _, id := range reg.IDs() {
		def := reg.Get(id)
		space := CreateSpace(def)
		levelData.Spaces[id] = space

		for i, p := range def.Platforms {
			levelData.Platforms[id] = append(levelData.Platforms[id], CreatePlatform(w, space, id, i, p))
		}
		for i, c := range def.Collectibles {
			levelData.Collectibles[id] = append(levelData.Collectibles[id], CreateCollectible(w, space, id, i, c))
		}

		zones := []struct {
			rect *gamemath.Rect
			kind components.ZoneKind
		}{
			{def.Goal, components.ZoneGoal},
			{def.Portal, components.ZonePortal},
			{def.SecretTrigger, components.ZoneSecretTrigger},
		}
		for _, z := range zones {
			if z.rect == nil {
				continue
			}
			levelData.Zones[id] = append(levelData.Zones[id], CreateZone(w, space, id, z.kind, *z.rect))
		}
	}

	components.Level.Set(level, levelData)

	return level
}
