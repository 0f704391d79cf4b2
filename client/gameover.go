package client

import (
	"fmt"
	"image/color"

	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/fonts"
	"github.com/danigirl329/kiro-game-challenge/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver dims the world once the session has ended and shows the result.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetSession(e.World)
	if session == nil || !session.State.Terminal() {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.UI.OverlayColor, false)

	title := "GAME OVER"
	titleColor := cfg.Message.LoseColor
	if session.Won {
		title = "YOU WIN!"
		titleColor = cfg.Message.WinColor
	}
	drawCentered(screen, title, fonts.Title, width, height/2-20, titleColor)

	summary := fmt.Sprintf("Final score: %d", session.Score)
	if session.IsNewHighScore {
		summary += "  (new high score!)"
	}
	drawCentered(screen, summary, fonts.Bold, width, height/2+20, cfg.UI.HUDTextColor)
	drawCentered(screen, "Press R to restart, Esc for the menu", fonts.Small, width, height/2+50, cfg.UI.HUDTextColor)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, width, y float64, c color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	x := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, s, face, x, int(y), c)
}
