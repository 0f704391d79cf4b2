package components

import (
	"math/rand"

	"github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
)

type MonsterData struct {
	Phase      config.MonsterPhase
	PhaseTimer int
	Active     bool // false once it sank back or hit the player
	AnchorY    float64
	RiseSpeed  float64
}

var Monster = donburi.NewComponentType[MonsterData]()

// MonsterSpawnerData is a singleton driving periodic spawns.
type MonsterSpawnerData struct {
	Timer   int
	Rand    *rand.Rand
	Anchors []leveldata.Point
}

var MonsterSpawner = donburi.NewComponentType[MonsterSpawnerData]()
