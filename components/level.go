package components

import (
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData is a singleton holding the entities of both level sets. Which one
// is active is tracked by the session.
type LevelData struct {
	Registry *leveldata.Registry

	// Entries in registry order, per level
	Platforms    map[leveldata.LevelID][]*donburi.Entry
	Collectibles map[leveldata.LevelID][]*donburi.Entry
	Zones        map[leveldata.LevelID][]*donburi.Entry

	// One resolv space per level for pickup and zone lookups
	Spaces map[leveldata.LevelID]*resolv.Space
}

var Level = donburi.NewComponentType[LevelData]()
