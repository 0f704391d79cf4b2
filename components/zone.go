package components

import (
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ZoneKind identifies a static trigger rectangle.
type ZoneKind int

const (
	ZoneGoal ZoneKind = iota
	ZonePortal
	ZoneSecretTrigger
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneGoal:
		return "goal"
	case ZonePortal:
		return "portal"
	case ZoneSecretTrigger:
		return "secret_trigger"
	}
	return "unknown"
}

type ZoneData struct {
	Level leveldata.LevelID
	Kind  ZoneKind
}

var Zone = donburi.NewComponentType[ZoneData]()
