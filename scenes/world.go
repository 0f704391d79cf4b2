package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/danigirl329/kiro-game-challenge/assets"
	"github.com/danigirl329/kiro-game-challenge/client"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/danigirl329/kiro-game-challenge/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sim          *systems.Simulation
	sceneChanger SceneChanger
	store        storage.ScoreStore
	once         sync.Once
	leaving      bool
}

// NewPlatformerScene creates a new platformer scene backed by store
func NewPlatformerScene(sc SceneChanger, store storage.ScoreStore) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, store: store}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if ps.leaving {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.store))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	sim, err := systems.NewSimulation(systems.Options{
		Registry: assets.NewLevelLoader().MustLoadRegistry(),
		Store:    ps.store,
		Seed:     time.Now().UnixNano(),
		Input:    client.UpdateKeyboardInput,
	})
	if err != nil {
		log.Fatalf("failed to start game: %v", err)
	}
	ps.sim = sim

	e := ecs.NewECS(sim.World)

	e.AddSystem(func(*ecs.ECS) { sim.Tick() })
	e.AddSystem(client.UpdatePortalPulse)
	e.AddSystem(ps.updateLeave)

	// World layer
	e.AddRenderer(client.LayerWorld, client.DrawLevel)
	e.AddRenderer(client.LayerWorld, client.DrawZones)
	e.AddRenderer(client.LayerWorld, client.DrawCollectibles)
	e.AddRenderer(client.LayerWorld, client.DrawMonsters)
	e.AddRenderer(client.LayerWorld, client.DrawPlayer)

	e.AddRenderer(client.LayerEffects, client.DrawParticles)

	e.AddRenderer(client.LayerHUD, client.DrawHUD)
	e.AddRenderer(client.LayerHUD, client.DrawMessage)
	e.AddRenderer(client.LayerHUD, client.DrawHitboxes)

	e.AddRenderer(client.LayerOverlay, client.DrawGameOver)

	ps.ecs = e
}

// updateLeave returns to the menu when Back is pressed on the end screen.
func (ps *PlatformerScene) updateLeave(e *ecs.ECS) {
	if !ps.sim.Session().GameOver {
		return
	}
	if systems.GetAction(systems.GetInput(e.World), cfg.ActionMenuBack).JustPressed {
		ps.leaving = true
	}
}
