package config

// MonsterPhase is the emergence cycle of a gap monster.
type MonsterPhase int

const (
	MonsterRising  MonsterPhase = iota // climbing out of the gap
	MonsterWaiting                     // fully emerged, holding position
	MonsterFalling                     // sinking back to the anchor
)

var monsterPhaseNames = map[MonsterPhase]string{
	MonsterRising:  "rising",
	MonsterWaiting: "waiting",
	MonsterFalling: "falling",
}

func (p MonsterPhase) String() string {
	if name, ok := monsterPhaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// SessionState is the state of a single play-through.
type SessionState int

const (
	SessionPlaying SessionState = iota
	SessionWon
	SessionLost
)

var sessionStateNames = map[SessionState]string{
	SessionPlaying: "playing",
	SessionWon:     "won",
	SessionLost:    "lost",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the play-through is over.
func (s SessionState) Terminal() bool {
	return s == SessionWon || s == SessionLost
}
