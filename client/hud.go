package client

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/fonts"
	"github.com/danigirl329/kiro-game-challenge/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, high score and hearts in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetSession(e.World)
	if session == nil {
		return
	}
	margin := cfg.UI.HUDMargin
	face := fonts.Bold.Get()

	text.Draw(screen, fmt.Sprintf("Score: %d", session.Score), face, int(margin), int(margin)+18, cfg.UI.HUDTextColor)

	highColor := cfg.UI.HUDTextColor
	if session.IsNewHighScore {
		highColor = cfg.UI.HighScoreColor
	}
	text.Draw(screen, fmt.Sprintf("High Score: %d", session.HighScore), face, int(margin), int(margin)+44, highColor)

	drawHearts(screen, session.Lives, margin, margin+58)
}

// drawHearts draws one heart per whole life and a broken heart for a
// remaining half.
func drawHearts(screen *ebiten.Image, lives, x, y float64) {
	size := cfg.UI.HeartSize
	full := int(math.Floor(lives))
	for i := 0; i < full; i++ {
		drawHeart(screen, x+float64(i)*(size+6), y, size, cfg.UI.HeartColor)
	}
	if lives-float64(full) >= 0.5 {
		drawHeart(screen, x+float64(full)*(size+6), y, size, cfg.UI.HeartEmptyColor)
	}
}

func drawHeart(screen *ebiten.Image, x, y, size float64, c color.Color) {
	r := float32(size / 4)
	left := float32(x) + r
	right := float32(x+size) - r
	top := float32(y) + r

	vector.DrawFilledCircle(screen, left, top, r, c, true)
	vector.DrawFilledCircle(screen, right, top, r, c, true)

	var path vector.Path
	path.MoveTo(float32(x), top)
	path.LineTo(float32(x+size), top)
	path.LineTo(float32(x+size/2), float32(y+size))
	path.Close()
	fillPath(screen, &path, c)
}
