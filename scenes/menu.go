package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/danigirl329/kiro-game-challenge/client"
	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	store        storage.ScoreStore
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, store storage.ScoreStore) *MenuScene {
	return &MenuScene{sceneChanger: sc, store: store}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	actions := client.MenuActions{
		Start: func() {
			ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.store))
		},
		Scores: func() {
			ms.sceneChanger.ChangeScene(NewScoresScene(ms.sceneChanger, ms.store))
		},
		Exit: func() {
			os.Exit(0)
		},
	}

	ms.ecs.AddSystem(client.UpdateInput)
	ms.ecs.AddSystem(client.NewUpdateMenu(actions))

	ms.ecs.AddRenderer(client.LayerHUD, client.DrawMenu)
}
