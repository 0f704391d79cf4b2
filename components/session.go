package components

import (
	"time"

	"github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/yohamta/donburi"
)

// SessionData is a singleton for the current play-through.
type SessionData struct {
	State          config.SessionState
	Score          int
	Lives          float64 // half-heart steps
	GameOver       bool
	Won            bool
	HighScore      int
	IsNewHighScore bool
	ActiveLevel    leveldata.LevelID
	Recorded       bool // final score already handed to the store
	Ticks          int
}

func (s *SessionData) InSecretLevel() bool {
	return s.ActiveLevel == leveldata.LevelSecret
}

var Session = donburi.NewComponentType[SessionData]()

// ScoreboardData holds the persistence gateway and the clock used to stamp
// recorded scores.
type ScoreboardData struct {
	Store storage.ScoreStore
	Clock func() time.Time
}

func (s *ScoreboardData) Now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

var Scoreboard = donburi.NewComponentType[ScoreboardData]()
