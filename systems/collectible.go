package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/shared/leveldata"
	"github.com/yohamta/donburi"
)

// checkCollectibles collects every untouched pickup of the active level that
// overlaps the player, in level order.
func checkCollectibles(w donburi.World, level *components.LevelData, session *components.SessionData, obj *components.ObjectData) {
	playerRect := obj.Rect()
	for _, entry := range level.Collectibles[session.ActiveLevel] {
		item := components.Collectible.Get(entry)
		itemRect := components.Object.Get(entry).Rect()
		if item.Collected || !gamemath.Overlaps(playerRect, itemRect) {
			continue
		}

		item.Collected = true
		if item.Kind == leveldata.Bomb {
			Damage(w, item.Damage)
		} else {
			session.Score += item.Value
		}

		cx, cy := itemRect.Center()
		components.Collected.Publish(w, components.CollectedEvent{
			Kind:  item.Kind,
			Level: item.Level,
			X:     cx,
			Y:     cy,
		})
	}
}
