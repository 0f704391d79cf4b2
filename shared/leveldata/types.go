// Package leveldata provides TMX level parsing for the platformer levels.
// It has no dependencies on ebitengine or donburi so the headless runner can
// load levels too.
package leveldata

import (
	"fmt"
	"image/color"

	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
)

// LevelID selects one of the level definitions in a Registry.
type LevelID int

const (
	LevelMain LevelID = iota
	LevelSecret
)

var levelNames = map[LevelID]string{
	LevelMain:   "main",
	LevelSecret: "secret",
}

func (id LevelID) String() string {
	if name, ok := levelNames[id]; ok {
		return name
	}
	return "unknown"
}

// ParseLevelID maps a level name from a TMX map property to its ID.
func ParseLevelID(s string) (LevelID, error) {
	for id, name := range levelNames {
		if name == s {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// CollectibleKind distinguishes score pickups from hazards.
type CollectibleKind int

const (
	Coin CollectibleKind = iota
	Gem
	Bomb
)

var collectibleNames = map[CollectibleKind]string{
	Coin: "coin",
	Gem:  "gem",
	Bomb: "bomb",
}

func (k CollectibleKind) String() string {
	if name, ok := collectibleNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseCollectibleKind maps a Tiled object class to a kind.
func ParseCollectibleKind(s string) (CollectibleKind, error) {
	for k, name := range collectibleNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown collectible %q", s)
}

// PlatformDef is a static solid rectangle.
type PlatformDef struct {
	gamemath.Rect
	Color color.RGBA
	ID    string // optional marker, e.g. "third"
}

// CollectibleDef is a pickup. Coins and gems carry Value, bombs carry Damage.
type CollectibleDef struct {
	gamemath.Rect
	Kind   CollectibleKind
	Value  int
	Damage float64
}

// SpawnPoint is a named teleport destination with the camera offset to use on arrival.
type SpawnPoint struct {
	X, Y    float64
	CameraX float64
}

// Point is a monster spawn anchor.
type Point struct {
	X, Y float64
}

// Well-known spawn names.
const (
	SpawnStart        = "start"
	SpawnEntry        = "entry"
	SpawnSecretReturn = "secret_return"
)

// LevelDef holds everything parsed from one level file.
type LevelDef struct {
	ID     LevelID
	Width  float64
	Height float64

	// Platforms and Collectibles keep file order; collision resolution depends on it.
	Platforms    []PlatformDef
	Collectibles []CollectibleDef

	Goal          *gamemath.Rect
	Portal        *gamemath.Rect
	SecretTrigger *gamemath.Rect

	MonsterSpawns []Point
	Spawns        map[string]SpawnPoint
}

// Spawn returns the named spawn point.
func (l *LevelDef) Spawn(name string) (SpawnPoint, bool) {
	sp, ok := l.Spawns[name]
	return sp, ok
}
