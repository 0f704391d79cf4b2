package headless

import (
	"context"
	"testing"
	"time"

	"github.com/danigirl329/kiro-game-challenge/components"
	"github.com/stretchr/testify/assert"
)

// fakeSim ends the session at endAt and restarts it at restartAt.
type fakeSim struct {
	ticks     int
	endAt     int
	restartAt int
}

func (f *fakeSim) Tick() { f.ticks++ }

func (f *fakeSim) Session() components.SessionData {
	over := f.ticks >= f.endAt && (f.restartAt == 0 || f.ticks < f.restartAt)
	return components.SessionData{GameOver: over, Score: f.ticks}
}

func TestRunStopsAtBudget(t *testing.T) {
	sim := &fakeSim{endAt: 1000}
	res := NewGameLoop(sim, 0, 25).Run(context.Background())

	assert.Equal(t, 25, res.Ticks)
	assert.Equal(t, 25, sim.ticks)
	assert.Equal(t, 25, res.Session.Score)
	assert.Zero(t, res.Restarts)
}

func TestRunCountsRestarts(t *testing.T) {
	sim := &fakeSim{endAt: 5, restartAt: 8}
	res := NewGameLoop(sim, 0, 10).Run(context.Background())

	assert.Equal(t, 1, res.Restarts)
	assert.False(t, res.Session.GameOver)
}

func TestRunHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := &fakeSim{endAt: 1000}
	res := NewGameLoop(sim, 0, 0).Run(ctx)

	assert.Zero(t, res.Ticks)
}

func TestStopEndsThrottledRun(t *testing.T) {
	sim := &fakeSim{endAt: 1000}
	loop := NewGameLoop(sim, 1000, 0)

	done := make(chan Result)
	go func() { done <- loop.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	loop.Stop()

	select {
	case res := <-done:
		assert.Positive(t, res.Ticks)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestStopTwiceIsSafe(t *testing.T) {
	loop := NewGameLoop(&fakeSim{endAt: 1000}, 0, 0)

	assert.NotPanics(t, func() {
		loop.Stop()
		loop.Stop()
	})
	res := loop.Run(context.Background())
	assert.Zero(t, res.Ticks)
}
