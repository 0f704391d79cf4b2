package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// RegisterMessages keeps the banner in sync with level changes and the end of
// the session.
func RegisterMessages(w donburi.World) {
	components.SecretDiscovered.Subscribe(w, func(w donburi.World, _ components.SecretDiscoveredEvent) {
		ShowMessage(w, cfg.Message.SecretFound, components.MessageWin)
		QueueFollowUp(w, cfg.Message.SecretHint, cfg.Message.FollowUpDelay)
	})
	components.SecretReturned.Subscribe(w, func(w donburi.World, _ components.SecretReturnedEvent) {
		ShowMessage(w, cfg.Message.SecretReturn, components.MessageInfo)
	})
	components.SessionEnded.Subscribe(w, func(w donburi.World, e components.SessionEndedEvent) {
		switch {
		case e.Won && e.NewHighScore:
			ShowMessage(w, cfg.Message.WinHighScore, components.MessageWin)
		case e.Won:
			ShowMessage(w, cfg.Message.Win, components.MessageWin)
		default:
			ShowMessage(w, cfg.Message.Lose, components.MessageLose)
		}
	})
}

func getMessage(w donburi.World) *components.MessageStateData {
	entry, ok := components.MessageState.First(w)
	if !ok {
		return nil
	}
	return components.MessageState.Get(entry)
}

// ShowMessage replaces the banner and drops any pending follow-up.
func ShowMessage(w donburi.World, text string, kind components.MessageKind) {
	msg := getMessage(w)
	if msg == nil {
		return
	}
	msg.Text = text
	msg.Kind = kind
	msg.FollowUp = ""
	msg.FollowUpTimer = 0
	msg.Alpha = 0
	msg.Fade = gween.New(0, 1, cfg.Message.FadeFrames, ease.OutQuad)
}

// QueueFollowUp shows text as a plain message after delay ticks.
func QueueFollowUp(w donburi.World, text string, delay int) {
	msg := getMessage(w)
	if msg == nil {
		return
	}
	msg.FollowUp = text
	msg.FollowUpTimer = delay
}

// UpdateMessages runs the banner fade and swaps in a due follow-up.
func UpdateMessages(w donburi.World) {
	msg := getMessage(w)
	if msg == nil {
		return
	}

	if msg.Fade != nil {
		alpha, done := msg.Fade.Update(1)
		msg.Alpha = alpha
		if done {
			msg.Alpha = 1
			msg.Fade = nil
		}
	}

	if msg.FollowUp == "" {
		return
	}
	msg.FollowUpTimer--
	if msg.FollowUpTimer <= 0 {
		ShowMessage(w, msg.FollowUp, components.MessageInfo)
	}
}
