package client

import (
	"image"
	"image/color"
	"math"

	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/danigirl329/kiro-game-challenge/systems"
	"github.com/danigirl329/kiro-game-challenge/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewport is the visible world rectangle. The camera position is its top-left.
func viewport(w donburi.World, screen *ebiten.Image) gamemath.Rect {
	var camX, camY float64
	if camera := systems.GetCamera(w); camera != nil {
		camX, camY = camera.Position.X, camera.Position.Y
	}
	return gamemath.Rect{
		X: camX,
		Y: camY,
		W: float64(screen.Bounds().Dx()),
		H: float64(screen.Bounds().Dy()),
	}
}

func visible(view, r gamemath.Rect) bool {
	return r.Right() >= view.X && r.X <= view.Right() && r.Bottom() >= view.Y && r.Y <= view.Bottom()
}

func fillRect(screen *ebiten.Image, view, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X-view.X), float32(r.Y-view.Y), float32(r.W), float32(r.H), c, false)
}

// DrawLevel renders the background and the platforms of the active level.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	level := systems.GetLevel(e.World)
	session := systems.GetSession(e.World)
	if level == nil || session == nil {
		return
	}
	view := viewport(e.World, screen)

	for _, entry := range level.Platforms[session.ActiveLevel] {
		r := components.Object.Get(entry).Rect()
		if !visible(view, r) {
			continue
		}
		fillRect(screen, view, r, components.Platform.Get(entry).Color)
	}
}

// DrawCollectibles renders every pickup of the active level not yet taken.
func DrawCollectibles(e *ecs.ECS, screen *ebiten.Image) {
	level := systems.GetLevel(e.World)
	session := systems.GetSession(e.World)
	if level == nil || session == nil {
		return
	}
	view := viewport(e.World, screen)

	for _, entry := range level.Collectibles[session.ActiveLevel] {
		item := components.Collectible.Get(entry)
		r := components.Object.Get(entry).Rect()
		if item.Collected || !visible(view, r) {
			continue
		}

		cx, cy := r.Center()
		sx, sy := float32(cx-view.X), float32(cy-view.Y)
		switch item.Kind {
		case leveldata.Coin:
			vector.DrawFilledCircle(screen, sx, sy, float32(r.W/2), cfg.UI.CoinColor, true)
		case leveldata.Gem:
			c := cfg.UI.GemColor
			if item.Level == leveldata.LevelSecret {
				c = cfg.UI.SecretGemColor
			}
			drawDiamond(screen, sx, sy, float32(r.W/2), c)
		case leveldata.Bomb:
			vector.DrawFilledCircle(screen, sx, sy, float32(r.W/2), cfg.UI.BombColor, true)
			// fuse
			vector.StrokeLine(screen, sx, sy-float32(r.H/2), sx+4, sy-float32(r.H/2)-6, 2, cfg.UI.CoinColor, true)
		}
	}
}

func drawDiamond(screen *ebiten.Image, cx, cy, r float32, c color.Color) {
	var path vector.Path
	path.MoveTo(cx, cy-r)
	path.LineTo(cx+r, cy)
	path.LineTo(cx, cy+r)
	path.LineTo(cx-r, cy)
	path.Close()
	fillPath(screen, &path, c)
}

var whiteImage *ebiten.Image

// fillPath fills path with a solid color using a white 1x1 source.
func fillPath(screen *ebiten.Image, path *vector.Path, c color.Color) {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawZones renders the goal flag in the main level and the pulsing portal
// in the secret level.
func DrawZones(e *ecs.ECS, screen *ebiten.Image) {
	level := systems.GetLevel(e.World)
	session := systems.GetSession(e.World)
	if level == nil || session == nil {
		return
	}
	view := viewport(e.World, screen)
	pulse := portalPulse.value()

	for _, entry := range level.Zones[session.ActiveLevel] {
		r := components.Object.Get(entry).Rect()
		if !visible(view, r) {
			continue
		}

		switch components.Zone.Get(entry).Kind {
		case components.ZoneGoal:
			// pole and flag
			pole := gamemath.Rect{X: r.X, Y: r.Y, W: 4, H: r.H}
			fillRect(screen, view, pole, cfg.UI.HUDTextColor)
			flag := gamemath.Rect{X: r.X + 4, Y: r.Y, W: r.W - 4, H: r.H / 2}
			fillRect(screen, view, flag, cfg.UI.GoalColor)
		case components.ZonePortal:
			cx, cy := r.Center()
			radius := float32(r.W/2) * float32(0.8+0.2*pulse)
			vector.DrawFilledCircle(screen, float32(cx-view.X), float32(cy-view.Y), radius, cfg.UI.PortalColor, true)
			vector.StrokeCircle(screen, float32(cx-view.X), float32(cy-view.Y), radius+4, 2, cfg.UI.HUDTextColor, true)
		}
	}
}

// DrawMonsters renders the active monsters as a body with a head and eyes.
func DrawMonsters(e *ecs.ECS, screen *ebiten.Image) {
	view := viewport(e.World, screen)

	tags.Monster.Each(e.World, func(entry *donburi.Entry) {
		if !components.Monster.Get(entry).Active {
			return
		}
		r := components.Object.Get(entry).Rect()
		if !visible(view, r) {
			return
		}

		cx := float32(r.X + r.W/2 - view.X)
		top := float32(r.Y - view.Y)
		vector.DrawFilledCircle(screen, cx, top+float32(r.H)-15, float32(r.W/2), cfg.UI.MonsterColor, true)
		vector.DrawFilledCircle(screen, cx, top+20, 18, cfg.UI.MonsterHeadColor, true)
		for _, dx := range []float32{-8, 8} {
			vector.DrawFilledCircle(screen, cx+dx, top+18, 6, color.White, true)
			vector.DrawFilledCircle(screen, cx+dx, top+18, 3, color.Black, true)
		}
	})
}

// DrawPlayer renders the player box with an eye on the facing side.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := systems.GetPlayer(e.World)
	if !ok {
		return
	}
	view := viewport(e.World, screen)
	r := components.Object.Get(entry).Rect()
	fillRect(screen, view, r, cfg.UI.PlayerColor)

	eyeX := r.X + r.W*0.7
	if !components.Player.Get(entry).FacingRight {
		eyeX = r.X + r.W*0.3
	}
	vector.DrawFilledCircle(screen, float32(eyeX-view.X), float32(r.Y+r.H*0.35-view.Y), 5, color.White, true)
	vector.DrawFilledCircle(screen, float32(eyeX-view.X), float32(r.Y+r.H*0.35-view.Y), 2, color.Black, true)
}

// DrawParticles renders particles in world space, except confetti which is
// drawn straight onto the screen.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Particles.First(e.World)
	if !ok {
		return
	}
	view := viewport(e.World, screen)

	for _, p := range components.Particles.Get(entry).List {
		x, y := p.X, p.Y
		if !p.ScreenSpace() {
			x -= view.X
			y -= view.Y
		}
		c := fade(p.Color, p.Life)

		switch p.Kind {
		case components.ParticleConfetti:
			drawRotatedRect(screen, x, y, p.Size, p.Size*1.5, p.Rotation, c)
		case components.ParticleSparkle:
			drawSparkle(screen, x, y, p.Size, p.Rotation, c)
		default:
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.Size), c, true)
		}
	}
}

func fade(c color.RGBA, life float64) color.RGBA {
	a := gamemath.Clamp(life, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func drawRotatedRect(screen *ebiten.Image, x, y, w, h, rotation float64, c color.Color) {
	sin, cos := math.Sincos(rotation)
	corners := [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}

	var path vector.Path
	for i, corner := range corners {
		px := float32(x + corner[0]*cos - corner[1]*sin)
		py := float32(y + corner[0]*sin + corner[1]*cos)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	fillPath(screen, &path, c)
}

func drawSparkle(screen *ebiten.Image, x, y, size, rotation float64, c color.Color) {
	var path vector.Path
	for i := 0; i < 4; i++ {
		angle := rotation + math.Pi/2*float64(i)
		px := float32(x + math.Cos(angle)*size)
		py := float32(y + math.Sin(angle)*size)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	fillPath(screen, &path, c)
}
