package components

import (
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi/features/events"
)

// Presentation events published by the simulation. Handlers never feed back
// into gameplay state.

type LandingImpactEvent struct {
	X, Y float64
}

type ImpactEvent struct {
	X, Y float64
}

type DoubleJumpEvent struct {
	X, Y float64
}

type TripleJumpEvent struct {
	X, Y float64
}

type TrailEvent struct {
	X, Y float64
}

type CollectedEvent struct {
	Kind  leveldata.CollectibleKind
	Level leveldata.LevelID
	X, Y  float64
}

type SecretDiscoveredEvent struct{}

type SecretReturnedEvent struct{}

type NewHighScoreEvent struct {
	Score int
}

type SessionEndedEvent struct {
	Won          bool
	Score        int
	NewHighScore bool
}

var (
	LandingImpact    = events.NewEventType[LandingImpactEvent]()
	Impact           = events.NewEventType[ImpactEvent]()
	DoubleJump       = events.NewEventType[DoubleJumpEvent]()
	TripleJump       = events.NewEventType[TripleJumpEvent]()
	Trail            = events.NewEventType[TrailEvent]()
	Collected        = events.NewEventType[CollectedEvent]()
	SecretDiscovered = events.NewEventType[SecretDiscoveredEvent]()
	SecretReturned   = events.NewEventType[SecretReturnedEvent]()
	NewHighScore     = events.NewEventType[NewHighScoreEvent]()
	SessionEnded     = events.NewEventType[SessionEndedEvent]()
)
