package client

import (
	"image/color"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var messageFontFace font.Face

// DrawMessage renders the banner at the top center of the screen.
func DrawMessage(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.MessageState.First(e.World)
	if !ok {
		return
	}
	msg := components.MessageState.Get(entry)
	if msg.Text == "" {
		return
	}

	// Lazy initialize cached font face
	if messageFontFace == nil {
		messageFontFace = fonts.Regular.Get()
	}

	bounds := text.BoundString(messageFontFace, msg.Text) //nolint:staticcheck // TODO: migrate to text/v2
	padding := cfg.Message.BoxPadding
	boxWidth := float64(bounds.Dx()) + padding*2
	boxHeight := float64(bounds.Dy()) + padding*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2
	boxY := cfg.Message.TopMargin

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxWidth), float32(boxHeight),
		withAlpha(cfg.Message.BoxColor, msg.Alpha), false)

	textX := int(boxX+padding) - bounds.Min.X
	textY := int(boxY+padding) - bounds.Min.Y
	text.Draw(screen, msg.Text, messageFontFace, textX, textY, withAlpha(messageColor(msg.Kind), msg.Alpha))
}

func messageColor(kind components.MessageKind) color.RGBA {
	switch kind {
	case components.MessageWin:
		return cfg.Message.WinColor
	case components.MessageLose:
		return cfg.Message.LoseColor
	}
	return cfg.Message.TextColor
}

// withAlpha scales a premultiplied color by alpha.
func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	return fade(c, float64(alpha))
}
