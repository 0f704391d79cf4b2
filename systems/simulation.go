package systems

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/danigirl329/kiro-game-challenge/systems/factory"
	"github.com/yohamta/donburi"
)

// System is one step of the tick pipeline.
type System func(w donburi.World)

// Options configures a new Simulation.
type Options struct {
	Registry *leveldata.Registry
	Store    storage.ScoreStore // nil disables persistence
	Seed     int64              // seeds monster spawns and particles
	Clock    func() time.Time   // stamps recorded scores; defaults to time.Now
	Input    System             // fills the input frame at the start of each tick
}

// Simulation owns a world with one running session and steps it one tick at
// a time. It never touches the screen or the keyboard.
type Simulation struct {
	World   donburi.World
	input   System
	systems []System
}

var ErrNoRegistry = errors.New("simulation needs a level registry")

func NewSimulation(opts Options) (*Simulation, error) {
	if opts.Registry == nil {
		return nil, ErrNoRegistry
	}
	main := opts.Registry.Main()
	start, ok := main.Spawn(leveldata.SpawnStart)
	if !ok {
		return nil, fmt.Errorf("main level has no %q spawn", leveldata.SpawnStart)
	}

	w := donburi.NewWorld()

	levelEntry := factory.CreateLevel(w, opts.Registry)
	level := components.Level.Get(levelEntry)

	factory.CreateCamera(w)
	factory.CreateSession(w, opts.Store, opts.Clock)
	factory.CreatePlayer(w, level.Spaces[leveldata.LevelMain], start.X, start.Y)
	factory.CreateMonsterSpawner(w, main.MonsterSpawns, rand.New(rand.NewSource(opts.Seed)))
	factory.CreateParticles(w, rand.New(rand.NewSource(opts.Seed+1)))
	factory.CreateMessage(w, cfg.Message.StartHint)
	getOrCreateInput(w)

	RegisterEffects(w)
	RegisterMessages(w)

	return &Simulation{
		World: w,
		input: opts.Input,
		systems: []System{
			UpdatePlayer,
			UpdateMonsters,
			UpdateEffects,
			UpdateMessages,
			UpdateSession,
		},
	}, nil
}

// Tick advances the world by one fixed step.
func (s *Simulation) Tick() {
	if s.input != nil {
		s.input(s.World)
	}
	for _, system := range s.systems {
		system(s.World)
	}
}

// Session returns a snapshot of the running session.
func (s *Simulation) Session() components.SessionData {
	if session := GetSession(s.World); session != nil {
		return *session
	}
	return components.SessionData{}
}
