package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 `yaml:"move_speed"`
	JumpPower float64 `yaml:"jump_power"` // negative is up

	// Triple jump impulse is JumpPower * TripleJumpMultiplier
	TripleJumpMultiplier float64 `yaml:"triple_jump_multiplier"`

	// Physics
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"` // applied to horizontal speed when no direction is held

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Trail particles
	TrailInterval int     `yaml:"trail_interval"`  // frames between trail particles
	TrailMinSpeed float64 `yaml:"trail_min_speed"` // horizontal speed needed to leave a trail
}

// MonsterConfig contains monster spawner and lifecycle values
type MonsterConfig struct {
	SpawnInterval int     `yaml:"spawn_interval"` // frames between spawn attempts
	SpawnChance   float64 `yaml:"spawn_chance"`   // probability of a spawn when the timer fires
	RiseSpeed     float64 `yaml:"rise_speed"`     // pixels per frame while rising or falling
	EmergeHeight  float64 `yaml:"emerge_height"`  // pixels above the anchor where rising stops
	WaitFrames    int     `yaml:"wait_frames"`    // frames spent fully emerged
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Damage        float64 `yaml:"damage"`
}

// SessionConfig contains score and lives values
type SessionConfig struct {
	StartingLives float64 `yaml:"starting_lives"`
	FallMargin    float64 `yaml:"fall_margin"` // pixels below the level before a life is lost
	AppName       string  `yaml:"app_name"`    // persistence namespace
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
	TargetDivisor   float64 `yaml:"target_divisor"`   // player is kept at viewport width / TargetDivisor
}

// ParticleConfig contains particle effect configuration
type ParticleConfig struct {
	MaxTrail        int
	ExplosionCount  int
	DoubleJumpCount int
	CoinSparkles    int
	GemSparkles     int

	TripleJumpConfetti int
	SecretConfetti     int
	HighScoreConfetti  int

	TrailDecay      float64
	ExplosionDecay  float64
	DoubleJumpDecay float64

	TrailLife     float64 // life lost per frame
	ExplosionLife float64
	SparkleLife   float64
	DefaultLife   float64

	ConfettiGravity float64
	SparkleGravity  float64

	TrailColor      color.RGBA
	DoubleJumpColor color.RGBA
	CoinColor       color.RGBA
	GemColor        color.RGBA
	Palette         []color.RGBA // confetti and explosion colors
}

// MessageConfig contains message banner configuration
type MessageConfig struct {
	FollowUpDelay int     // frames before a queued follow-up message replaces the current one
	FadeFrames    float32 // frames for the banner fade-in
	BoxPadding    float64
	TopMargin     float64
	BoxColor      color.RGBA
	TextColor     color.RGBA
	WinColor      color.RGBA
	LoseColor     color.RGBA

	StartHint    string
	SecretFound  string
	SecretHint   string
	SecretReturn string
	Win          string
	WinHighScore string
	Lose         string
}

// UIConfig contains HUD and level colors
type UIConfig struct {
	BackgroundColor  color.RGBA
	HUDTextColor     color.RGBA
	HighScoreColor   color.RGBA
	HeartColor       color.RGBA
	HeartEmptyColor  color.RGBA
	PlayerColor      color.RGBA
	CoinColor        color.RGBA
	GemColor         color.RGBA
	SecretGemColor   color.RGBA
	BombColor        color.RGBA
	GoalColor        color.RGBA
	PortalColor      color.RGBA
	MonsterColor     color.RGBA
	MonsterHeadColor color.RGBA
	OverlayColor     color.RGBA
	HeartSize        float64
	HUDMargin        float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// LevelConfig names the embedded level files
type LevelConfig struct {
	Dir        string
	MainFile   string
	SecretFile string
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Monster MonsterConfig
var Session SessionConfig
var Camera CameraConfig
var Particles ParticleConfig
var Message MessageConfig
var UI UIConfig
var Menu MenuConfig
var Level LevelConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	ShowHitboxes bool
}

var (
	purple      = color.RGBA{R: 0x79, G: 0x0E, B: 0xCB, A: 255}
	lightPurple = color.RGBA{R: 0x9b, G: 0x3f, B: 0xd9, A: 255}
	lilac       = color.RGBA{R: 0xb5, G: 0x65, B: 0xe8, A: 255}
	gold        = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 255}
	cyan        = color.RGBA{R: 0x00, G: 0xFF, B: 0xFF, A: 255}
)

func init() {
	C = &Config{
		Title:  "Kiro",
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	// Player Config
	Player = PlayerConfig{
		MoveSpeed:            5.0,
		JumpPower:            -12.0,
		TripleJumpMultiplier: 1.2,

		Gravity:  0.5,
		Friction: 0.8,

		Width:  50,
		Height: 50,

		TrailInterval: 5,
		TrailMinSpeed: 0.5,
	}

	// Monster Config
	Monster = MonsterConfig{
		SpawnInterval: 180, // 3 seconds at 60fps
		SpawnChance:   0.75,
		RiseSpeed:     2.0,
		EmergeHeight:  50.0,
		WaitFrames:    120,
		Width:         40,
		Height:        50,
		Damage:        1.0,
	}

	Session = SessionConfig{
		StartingLives: 3,
		FallMargin:    100,
		AppName:       "kiro_game",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		TargetDivisor:   3,
	}

	Particles = ParticleConfig{
		MaxTrail:        50,
		ExplosionCount:  12,
		DoubleJumpCount: 8,
		CoinSparkles:    8,
		GemSparkles:     10,

		TripleJumpConfetti: 30,
		SecretConfetti:     50,
		HighScoreConfetti:  100,

		TrailDecay:      0.95,
		ExplosionDecay:  0.92,
		DoubleJumpDecay: 0.95,

		TrailLife:     0.02,   // 50 frames
		ExplosionLife: 0.0125, // 80 frames
		SparkleLife:   0.0167, // 60 frames
		DefaultLife:   0.02,

		ConfettiGravity: 0.1,
		SparkleGravity:  0.15,

		TrailColor:      purple,
		DoubleJumpColor: lightPurple,
		CoinColor:       gold,
		GemColor:        cyan,
		Palette:         []color.RGBA{purple, lightPurple, lilac, cyan, gold},
	}

	Message = MessageConfig{
		FollowUpDelay: 180, // 3 seconds at 60fps
		FadeFrames:    20,
		BoxPadding:    8.0,
		TopMargin:     40.0,
		BoxColor:      color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		WinColor:      gold,
		LoseColor:     color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 255},

		StartHint:    "Use Arrow Keys or WASD to move and jump. Try triple jumping from the 3rd platform!",
		SecretFound:  "SECRET LEVEL DISCOVERED! Collect the golden gems!",
		SecretHint:   "Find the portal to return!",
		SecretReturn: "Returned from secret level!",
		Win:          "You Win! Press R to restart",
		WinHighScore: "NEW HIGH SCORE! You Win! Press R to restart",
		Lose:         "Game Over! Press R to restart",
	}

	UI = UIConfig{
		BackgroundColor:  color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 255},
		HUDTextColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		HighScoreColor:   gold,
		HeartColor:       color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 255},
		HeartEmptyColor:  color.RGBA{R: 0x55, G: 0x22, B: 0x22, A: 255},
		PlayerColor:      purple,
		CoinColor:        color.RGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 255},
		GemColor:         cyan,
		SecretGemColor:   gold,
		BombColor:        color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255},
		GoalColor:        color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 255},
		PortalColor:      lightPurple,
		MonsterColor:     color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 255},
		MonsterHeadColor: color.RGBA{R: 0x27, G: 0xae, B: 0x60, A: 255},
		OverlayColor:     color.RGBA{R: 0, G: 0, B: 0, A: 150},
		HeartSize:        16,
		HUDMargin:        10,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 255},
		TitleColor:        purple,
		TextColorNormal:   color.RGBA{R: 180, G: 180, B: 180, A: 255},
		TextColorSelected: gold,
		TitleY:            160,
		MenuStartY:        280,
		MenuItemHeight:    24,
		MenuItemGap:       16,
		MenuOptions:       []string{"Start", "High Scores", "Exit"},
	}

	Level = LevelConfig{
		Dir:        "levels",
		MainFile:   "main.tmx",
		SecretFile: "secret.tmx",
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
