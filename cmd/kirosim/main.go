// Command kirosim plays the game headless with the autopilot and reports how
// the session ended.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danigirl329/kiro-game-challenge/assets"
	"github.com/danigirl329/kiro-game-challenge/config"
	"github.com/danigirl329/kiro-game-challenge/headless"
	"github.com/danigirl329/kiro-game-challenge/storage"
	"github.com/danigirl329/kiro-game-challenge/systems"
)

func main() {
	ticks := flag.Int("ticks", 20000, "Tick budget (0 = run until interrupted)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	restarts := flag.Int("restarts", 3, "How many times the autopilot restarts after a session ends")
	persist := flag.Bool("persist", false, "Record scores in the real score store")
	tuning := flag.String("tuning", "", "YAML file with tuning overrides")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var store storage.ScoreStore = storage.NewScores(storage.NewMemory())
	if *persist {
		var err error
		if store, err = storage.Open(config.Session.AppName); err != nil {
			log.Printf("Scores will not be saved: %v", err)
		}
	}

	registry, err := assets.NewLevelLoader().LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	sim, err := systems.NewSimulation(systems.Options{
		Registry: registry,
		Store:    store,
		Seed:     *seed,
		Input:    systems.NewAutopilot(*seed, *restarts),
	})
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("Running kirosim (seed %d, budget %d ticks)", *seed, *ticks)
	res := headless.NewGameLoop(sim, *tickRate, *ticks).Run(ctx)

	s := res.Session
	outcome := "still playing"
	switch {
	case s.Won:
		outcome = "won"
	case s.GameOver:
		outcome = "lost"
	}
	log.Printf("Finished after %d ticks, %d restarts: %s, score %d, lives %.1f, high score %d",
		res.Ticks, res.Restarts, outcome, s.Score, s.Lives, s.HighScore)
	for _, entry := range storage.Recent(store.ScoreHistory(), 5) {
		log.Printf("  %s  score=%d won=%t", entry.Date, entry.Score, entry.Won)
	}
}
