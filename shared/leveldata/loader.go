package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"sort"
	"strings"

	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names in the level files.
const (
	groupPlatforms     = "Platforms"
	groupCollectibles  = "Collectibles"
	groupGoal          = "Goal"
	groupPortal        = "Portal"
	groupSecretTrigger = "SecretTrigger"
	groupMonsterSpawns = "MonsterSpawns"
	groupSpawns        = "Spawns"
)

// LoadLevel parses a TMX file into a LevelDef. It takes an fs.FS so callers
// can pass embed.FS (client) or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelDef, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.Properties == nil {
		return nil, fmt.Errorf("%s: missing level property", tmxPath)
	}
	id, err := ParseLevelID(levelMap.Properties.GetString("level"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	def := &LevelDef{
		ID:     id,
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
		Spawns: make(map[string]SpawnPoint),
	}

	for _, og := range levelMap.ObjectGroups {
		objects := append([]*tiled.Object(nil), og.Objects...)
		sort.SliceStable(objects, func(i, j int) bool {
			return objects[i].ID < objects[j].ID
		})

		switch og.Name {
		case groupPlatforms:
			for _, o := range objects {
				c, err := parseHexColor(o.Properties.GetString("color"))
				if err != nil {
					return nil, fmt.Errorf("%s: platform %d: %w", tmxPath, o.ID, err)
				}
				def.Platforms = append(def.Platforms, PlatformDef{
					Rect:  objectRect(o),
					Color: c,
					ID:    o.Properties.GetString("id"),
				})
			}
		case groupCollectibles:
			for _, o := range objects {
				class := o.Class
				if class == "" {
					class = o.Type
				}
				kind, err := ParseCollectibleKind(class)
				if err != nil {
					return nil, fmt.Errorf("%s: collectible %d: %w", tmxPath, o.ID, err)
				}
				def.Collectibles = append(def.Collectibles, CollectibleDef{
					Rect:   objectRect(o),
					Kind:   kind,
					Value:  o.Properties.GetInt("value"),
					Damage: o.Properties.GetFloat("damage"),
				})
			}
		case groupGoal:
			def.Goal = firstRect(objects)
		case groupPortal:
			def.Portal = firstRect(objects)
		case groupSecretTrigger:
			def.SecretTrigger = firstRect(objects)
		case groupMonsterSpawns:
			for _, o := range objects {
				def.MonsterSpawns = append(def.MonsterSpawns, Point{X: o.X, Y: o.Y})
			}
		case groupSpawns:
			for _, o := range objects {
				def.Spawns[o.Name] = SpawnPoint{
					X:       o.X,
					Y:       o.Y,
					CameraX: o.Properties.GetFloat("camera"),
				}
			}
		}
	}

	return def, nil
}

func objectRect(o *tiled.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func firstRect(objects []*tiled.Object) *gamemath.Rect {
	if len(objects) == 0 {
		return nil
	}
	r := objectRect(objects[0])
	return &r
}

// parseHexColor accepts #RRGGBB or #AARRGGBB (Tiled's color property format).
func parseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{A: 255}, nil
	}
	s = strings.TrimPrefix(s, "#")
	var a, r, g, b uint8
	switch len(s) {
	case 6:
		a = 255
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &a, &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
