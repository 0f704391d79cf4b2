package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageWin
	MessageLose
)

// MessageStateData is a singleton tracking the banner text
type MessageStateData struct {
	Text string
	Kind MessageKind

	// FollowUp replaces Text once FollowUpTimer runs out
	FollowUp      string
	FollowUpTimer int

	Fade  *gween.Tween
	Alpha float32
}

var MessageState = donburi.NewComponentType[MessageStateData]()
