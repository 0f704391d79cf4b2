// Package headless steps a simulation without a window, for soak runs and
// automated play-throughs.
package headless

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/danigirl329/kiro-game-challenge/components"
)

// Stepper is the part of a simulation the loop drives.
type Stepper interface {
	Tick()
	Session() components.SessionData
}

// Result summarises a finished run.
type Result struct {
	Ticks    int
	Restarts int
	Session  components.SessionData
}

type GameLoop struct {
	sim      Stepper
	tickRate int
	maxTicks int
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop that runs at tickRate ticks per second, or as
// fast as possible when tickRate is 0. maxTicks of 0 means no budget.
func NewGameLoop(sim Stepper, tickRate, maxTicks int) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until the budget is spent, ctx is done or Stop is called.
func (g *GameLoop) Run(ctx context.Context) Result {
	var tickC <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
		log.Printf("Game loop started at %d ticks/second", g.tickRate)
	} else {
		log.Println("Game loop started, unthrottled")
	}

	var res Result
	wasOver := false
	for g.maxTicks == 0 || res.Ticks < g.maxTicks {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return g.finish(res)
		case <-ctx.Done():
			log.Printf("Game loop cancelled: %v", ctx.Err())
			return g.finish(res)
		default:
		}

		if tickC != nil {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return g.finish(res)
			case <-ctx.Done():
				log.Printf("Game loop cancelled: %v", ctx.Err())
				return g.finish(res)
			case <-tickC:
			}
		}

		g.sim.Tick()
		res.Ticks++

		over := g.sim.Session().GameOver
		if wasOver && !over {
			res.Restarts++
		}
		wasOver = over
	}
	return g.finish(res)
}

// Stop ends a running loop. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) finish(res Result) Result {
	res.Session = g.sim.Session()
	return res
}
