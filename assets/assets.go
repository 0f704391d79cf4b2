package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader loads from the embedded levels directory.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: config.Level.Dir}
}

// NewLevelLoaderFS loads from an arbitrary file system, e.g. os.DirFS for edited levels.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadRegistry parses every level and checks that both the main and the
// secret level are present.
func (l *LevelLoader) LoadRegistry() (*leveldata.Registry, error) {
	reg, err := leveldata.LoadRegistry(l.fsys, l.dir)
	if err != nil {
		return nil, err
	}
	if reg.Get(leveldata.LevelSecret) == nil {
		return nil, fmt.Errorf("levels in %s: missing %s level", l.dir, leveldata.LevelSecret)
	}
	return reg, nil
}

func (l *LevelLoader) MustLoadRegistry() *leveldata.Registry {
	reg, err := l.LoadRegistry()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return reg
}
