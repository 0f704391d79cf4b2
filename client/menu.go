package client

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/fonts"
	"github.com/danigirl329/kiro-game-challenge/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// MenuActions are the callbacks behind the main menu entries.
type MenuActions struct {
	Start  func()
	Scores func()
	Exit   func()
}

// UpdateInput polls the keyboard into an ECS world that has no simulation,
// such as the menu.
func UpdateInput(e *ecs.ECS) {
	UpdateKeyboardInput(e.World)
}

// NewUpdateMenu creates the menu navigation system.
func NewUpdateMenu(actions MenuActions) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := systems.GetInput(e.World)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if systems.GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if systems.GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if systems.GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuStart:
				call(actions.Start)
			case components.MainMenuScores:
				call(actions.Scores)
			case components.MainMenuExit:
				call(actions.Exit)
			}
			return
		}

		if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
			call(actions.Exit)
		}
	}
}

func call(f func()) {
	if f != nil {
		f()
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, "KIRO", fonts.Title, width, cfg.Menu.TitleY, cfg.Menu.TitleColor)
	drawCentered(screen, "a triple-jump platformer", fonts.Small, width, cfg.Menu.TitleY+30, cfg.Menu.TextColorNormal)

	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, optionLabel(option), fonts.Bold, width, y+cfg.Menu.MenuItemHeight, textColor)
	}

	drawCentered(screen, "Arrows: Navigate   Enter: Select   Esc: Quit", fonts.Small, width, height-12, cfg.Menu.TextColorNormal)
}

func optionLabel(option components.MainMenuOption) string {
	if int(option) < len(cfg.Menu.MenuOptions) {
		return cfg.Menu.MenuOptions[option]
	}
	return ""
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuStart,
				components.MainMenuScores,
				components.MainMenuExit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
