package systems

import (
	"github.com/danigirl329/kiro-game-challenge/components"
	cfg "github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/shared/gamemath"
	"github.com/danigirl329/kiro-game-challenge/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateMonsters rolls the spawner, drops monsters that went inactive on an
// earlier tick and moves the rest through rising, waiting and falling.
func UpdateMonsters(w donburi.World) {
	session := GetSession(w)
	if session == nil || session.GameOver {
		return
	}

	updateMonsterSpawner(w)

	var finished []*donburi.Entry
	components.Monster.Each(w, func(entry *donburi.Entry) {
		monster := components.Monster.Get(entry)
		if !monster.Active {
			finished = append(finished, entry)
			return
		}
		advanceMonster(monster, components.Object.Get(entry))
	})

	for _, entry := range finished {
		w.Remove(entry.Entity())
	}
}

func updateMonsterSpawner(w donburi.World) {
	entry, ok := components.MonsterSpawner.First(w)
	if !ok {
		return
	}
	spawner := components.MonsterSpawner.Get(entry)

	spawner.Timer++
	if spawner.Timer < cfg.Monster.SpawnInterval {
		return
	}
	spawner.Timer = 0

	if len(spawner.Anchors) == 0 || spawner.Rand == nil {
		return
	}
	if spawner.Rand.Float64() >= cfg.Monster.SpawnChance {
		return
	}
	anchor := spawner.Anchors[spawner.Rand.Intn(len(spawner.Anchors))]
	factory.CreateMonster(w, anchor)
}

func advanceMonster(monster *components.MonsterData, obj *components.ObjectData) {
	monster.PhaseTimer++

	switch monster.Phase {
	case cfg.MonsterRising:
		obj.Y -= monster.RiseSpeed
		if obj.Y <= monster.AnchorY-cfg.Monster.EmergeHeight {
			monster.Phase = cfg.MonsterWaiting
			monster.PhaseTimer = 0
		}
	case cfg.MonsterWaiting:
		if monster.PhaseTimer >= cfg.Monster.WaitFrames {
			monster.Phase = cfg.MonsterFalling
			monster.PhaseTimer = 0
		}
	case cfg.MonsterFalling:
		obj.Y += monster.RiseSpeed
		if obj.Y >= monster.AnchorY {
			monster.Active = false
		}
	}
}

// checkMonsterHits damages the player for every active monster it touches.
// A monster that hits is spent.
func checkMonsterHits(w donburi.World, obj *components.ObjectData) {
	playerRect := obj.Rect()
	var hits []*components.MonsterData
	components.Monster.Each(w, func(entry *donburi.Entry) {
		monster := components.Monster.Get(entry)
		if monster.Active && gamemath.Overlaps(playerRect, components.Object.Get(entry).Rect()) {
			hits = append(hits, monster)
		}
	})

	for _, monster := range hits {
		monster.Active = false
		Damage(w, cfg.Monster.Damage)
	}
}
