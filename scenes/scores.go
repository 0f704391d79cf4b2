package scenes

import (
	"image/color"
	"sync"

	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/danigirl329/kiro-game-challenge/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ScoresScene shows the high score and the score history.
type ScoresScene struct {
	sceneChanger SceneChanger
	store        storage.ScoreStore
	scoresUI     *ui.ScoresUI
	once         sync.Once
	shouldGoBack bool
}

func NewScoresScene(sc SceneChanger, store storage.ScoreStore) *ScoresScene {
	return &ScoresScene{sceneChanger: sc, store: store}
}

func (ss *ScoresScene) Update() {
	ss.once.Do(ss.configure)

	ss.scoresUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ss.shouldGoBack = true
	}
	if ss.shouldGoBack {
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.store))
	}
}

func (ss *ScoresScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ss.scoresUI == nil {
		return
	}
	ss.scoresUI.Draw(screen)
}

func (ss *ScoresScene) configure() {
	ss.scoresUI = ui.NewScoresUI(ss.store, func() { ss.shouldGoBack = true })
}
