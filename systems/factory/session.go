package factory

import (
	"time"

	"github.com/danigirl329/kiro-game-challenge/archetypes"
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/yohamta/donburi"
)

// CreateSession spawns the session singleton. The high score is read from
// store; clock stamps recorded scores and defaults to time.Now.
func CreateSession(w donburi.World, store storage.ScoreStore, clock func() time.Time) *donburi.Entry {
	if store == nil {
		store = storage.Nop{}
	}
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		State:       cfg.SessionPlaying,
		Lives:       cfg.Session.StartingLives,
		HighScore:   store.HighScore(),
		ActiveLevel: leveldata.LevelMain,
	})
	components.Scoreboard.SetValue(session, components.ScoreboardData{Store: store, Clock: clock})
	return session
}
