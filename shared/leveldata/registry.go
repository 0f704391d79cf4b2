package leveldata

import (
	"fmt"
	"io/fs"
	"sort"
)

// Registry is the lookup table of level definitions keyed by LevelID.
type Registry struct {
	levels map[LevelID]*LevelDef
}

// NewRegistry builds a registry. The main level and its start spawn are required.
func NewRegistry(defs ...*LevelDef) (*Registry, error) {
	r := &Registry{levels: make(map[LevelID]*LevelDef, len(defs))}
	for _, d := range defs {
		if _, dup := r.levels[d.ID]; dup {
			return nil, fmt.Errorf("duplicate level %s", d.ID)
		}
		r.levels[d.ID] = d
	}
	main, ok := r.levels[LevelMain]
	if !ok {
		return nil, fmt.Errorf("registry: missing %s level", LevelMain)
	}
	if _, ok := main.Spawn(SpawnStart); !ok {
		return nil, fmt.Errorf("registry: %s level has no %q spawn", LevelMain, SpawnStart)
	}
	return r, nil
}

// Get returns the level with the given id, or nil.
func (r *Registry) Get(id LevelID) *LevelDef {
	return r.levels[id]
}

// Main returns the main level.
func (r *Registry) Main() *LevelDef {
	return r.levels[LevelMain]
}

// IDs lists the registered levels in ascending order.
func (r *Registry) IDs() []LevelID {
	ids := make([]LevelID, 0, len(r.levels))
	for id := range r.levels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LoadRegistry discovers all .tmx files in levelsDir within fsys and registers
// each one under the level id named by its "level" map property.
func LoadRegistry(fsys fs.FS, levelsDir string) (*Registry, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	defs := make([]*LevelDef, 0, len(matches))
	for _, path := range matches {
		def, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return NewRegistry(defs...)
}
