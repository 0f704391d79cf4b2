package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
)

// Damage removes amount lives (one life is 1.0, a bomb is half of that) and
// ends the session once none are left.
func Damage(w donburi.World, amount float64) {
	session := GetSession(w)
	if session == nil || session.State.Terminal() {
		return
	}
	session.Lives -= amount
	if session.Lives <= 0 {
		endSession(w, session, false)
	}
}

// Win ends a running session as won.
func Win(w donburi.World) {
	session := GetSession(w)
	if session == nil || session.State.Terminal() {
		return
	}
	endSession(w, session, true)
}

func endSession(w donburi.World, session *components.SessionData, won bool) {
	session.GameOver = true
	session.Won = won
	if won {
		session.State = cfg.SessionWon
	} else {
		session.State = cfg.SessionLost
	}

	recordScore(w, session)

	components.SessionEnded.Publish(w, components.SessionEndedEvent{
		Won:          won,
		Score:        session.Score,
		NewHighScore: session.IsNewHighScore,
	})
}

// recordScore hands the final score to the store exactly once per session.
func recordScore(w donburi.World, session *components.SessionData) {
	if session.Recorded {
		return
	}
	session.Recorded = true

	if session.Score > session.HighScore {
		session.HighScore = session.Score
		session.IsNewHighScore = true
		components.NewHighScore.Publish(w, components.NewHighScoreEvent{Score: session.Score})
	}

	board := getScoreboard(w)
	if board == nil || board.Store == nil {
		return
	}
	board.Store.SaveScore(session.Score, session.Won, board.Now())
}

func getScoreboard(w donburi.World) *components.ScoreboardData {
	entry, ok := components.Scoreboard.First(w)
	if !ok {
		return nil
	}
	return components.Scoreboard.Get(entry)
}

// UpdateSession counts played ticks and restarts a finished session on the
// restart edge.
func UpdateSession(w donburi.World) {
	session := GetSession(w)
	if session == nil {
		return
	}
	if !session.State.Terminal() {
		session.Ticks++
		return
	}
	if GetAction(getOrCreateInput(w), cfg.ActionRestart).JustPressed {
		Restart(w)
	}
}

// Restart puts the world back to a fresh session in the main level. Only a
// finished session can be restarted.
func Restart(w donburi.World) bool {
	session := GetSession(w)
	level := GetLevel(w)
	if session == nil || level == nil || !session.State.Terminal() {
		return false
	}

	if playerEntry, ok := GetPlayer(w); ok {
		resetPlayer(level, session, playerEntry)
	}

	highScore := session.HighScore
	if board := getScoreboard(w); board != nil && board.Store != nil {
		highScore = board.Store.HighScore()
	}
	*session = components.SessionData{
		State:       cfg.SessionPlaying,
		Lives:       cfg.Session.StartingLives,
		HighScore:   highScore,
		ActiveLevel: leveldata.LevelMain,
	}

	if camera := GetCamera(w); camera != nil {
		camera.Position.X = 0
		camera.Position.Y = 0
	}

	for _, entries := range level.Collectibles {
		for _, entry := range entries {
			components.Collectible.Get(entry).Collected = false
		}
	}

	clearMonsters(w)
	ShowMessage(w, cfg.Message.StartHint, components.MessageInfo)
	return true
}

// resetPlayer moves the player back to the main level start. FacingRight is
// kept from the previous session.
func resetPlayer(level *components.LevelData, session *components.SessionData, playerEntry *donburi.Entry) {
	obj := components.Object.Get(playerEntry)
	if space := activeSpace(level, session); space != nil {
		space.Remove(obj.Object)
	}

	main := level.Registry.Main()
	if spawn, ok := main.Spawn(leveldata.SpawnStart); ok {
		obj.X, obj.Y = spawn.X, spawn.Y
	}
	if space := level.Spaces[leveldata.LevelMain]; space != nil {
		space.Add(obj.Object)
	}
	obj.Update()

	*components.Physics.Get(playerEntry) = components.PhysicsData{}

	player := components.Player.Get(playerEntry)
	player.DoubleJumpAvailable = true
	player.HasDoubleJumped = false
	player.JumpCount = 0
	player.LastJumpPlatform = nil
	player.TrailTimer = 0
}

func clearMonsters(w donburi.World) {
	var monsters []*donburi.Entry
	components.Monster.Each(w, func(entry *donburi.Entry) {
		monsters = append(monsters, entry)
	})
	for _, entry := range monsters {
		w.Remove(entry.Entity())
	}

	if entry, ok := components.MonsterSpawner.First(w); ok {
		components.MonsterSpawner.Get(entry).Timer = 0
	}
}
