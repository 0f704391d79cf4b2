package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// maxListedScores caps how many history rows the screen shows.
const maxListedScores = 10

// ScoresUI lists the stored score history, newest first.
type ScoresUI struct {
	UI *ebitenui.UI

	OnGoBack func()

	store storage.ScoreStore

	highScoreLabel *widget.Label
	list           *widget.Container

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewScoresUI(store storage.ScoreStore, onGoBack func()) *ScoresUI {
	if store == nil {
		store = storage.Nop{}
	}
	ui := &ScoresUI{
		OnGoBack: onGoBack,
		store:    store,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.Refresh()
	return ui
}

func (ui *ScoresUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *ScoresUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 10, 10, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("HIGH SCORES", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{0x79, 0x0E, 0xCB, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.highScoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{0xFF, 0xD7, 0x00, 255},
		}),
	)
	contentContainer.AddChild(ui.highScoreLabel)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	ui.list = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 20, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(360, 40)),
	)
	contentContainer.AddChild(ui.list)

	contentContainer.AddChild(ui.buildButtons())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ScoresUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(ui.newButton("Back", func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))
	container.AddChild(ui.newButton("Clear History", func() {
		ui.store.Clear()
		ui.Refresh()
	}))

	return container
}

func (ui *ScoresUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 40, 90, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{90, 60, 130, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 25, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 230, 150, 255},
			Pressed: color.RGBA{200, 180, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Refresh reloads the high score and history rows from the store.
func (ui *ScoresUI) Refresh() {
	ui.highScoreLabel.Label = fmt.Sprintf("Best: %d", ui.store.HighScore())

	ui.list.RemoveChildren()
	var rows []string
	for _, entry := range storage.Recent(ui.store.ScoreHistory(), maxListedScores) {
		rows = append(rows, historyRow(entry))
	}
	if len(rows) == 0 {
		rows = []string{"No games played yet"}
	}
	for _, row := range rows {
		ui.list.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(row, &ui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{220, 220, 220, 255},
			}),
		))
	}
}

func historyRow(entry storage.ScoreEntry) string {
	result := "lost"
	if entry.Won {
		result = "won "
	}
	return fmt.Sprintf("%-19s  %s  %6d", entry.Date, result, entry.Score)
}

func (ui *ScoresUI) Update() {
	ui.UI.Update()
}

func (ui *ScoresUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
