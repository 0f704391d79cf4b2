package archetypes

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Object,
	)
	Zone = newArchetype(
		tags.Zone,
		components.Zone,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Monster = newArchetype(
		tags.Monster,
		components.Monster,
		components.Object,
	)
	MonsterSpawner = newArchetype(
		components.MonsterSpawner,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Scoreboard,
	)
	Particles = newArchetype(
		components.Particles,
	)
	Message = newArchetype(
		components.MessageState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
