// Package storage persists the score history and high score. Every failure is
// logged and replaced by a safe default so gameplay never depends on it.
package storage

import (
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/quasilyte/gdata"
)

const (
	keyScoreHistory = "kiro_score_history"
	keyHighScore    = "kiro_high_score"

	// MaxHistory is the number of entries kept; older ones are evicted first.
	MaxHistory = 50
)

// ScoreEntry is one finished play-through.
type ScoreEntry struct {
	Score     int    `json:"score"`
	Won       bool   `json:"won"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Date      string `json:"date"`
}

// ScoreStore is what the game session talks to.
type ScoreStore interface {
	SaveScore(score int, won bool, at time.Time)
	HighScore() int
	ScoreHistory() []ScoreEntry
	Clear()
}

// ItemStore is a key/value blob store. *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
	DeleteItem(key string) error
}

// Scores implements ScoreStore on top of an ItemStore using JSON values.
type Scores struct {
	items ItemStore
}

func NewScores(items ItemStore) *Scores {
	return &Scores{items: items}
}

// Open creates a gdata-backed store for appName. On failure it returns a Nop
// store alongside the error so callers can log and keep going.
func Open(appName string) (ScoreStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize score storage: %v", err)
		return Nop{}, err
	}
	return NewScores(m), nil
}

// SaveScore appends an entry and raises the stored high score when beaten.
func (s *Scores) SaveScore(score int, won bool, at time.Time) {
	history := s.ScoreHistory()
	history = append(history, ScoreEntry{
		Score:     score,
		Won:       won,
		Timestamp: at.UnixMilli(),
		Date:      at.Local().Format("2006-01-02 15:04:05"),
	})
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	data, err := json.Marshal(history)
	if err != nil {
		log.Printf("Warning: Could not serialize score history: %v", err)
		return
	}
	if err := s.items.SaveItem(keyScoreHistory, data); err != nil {
		log.Printf("Warning: Could not save score history: %v", err)
		return
	}

	s.updateHighScore(score)
}

// ScoreHistory returns the stored entries, oldest first.
func (s *Scores) ScoreHistory() []ScoreEntry {
	data, err := s.items.LoadItem(keyScoreHistory)
	if err != nil {
		log.Printf("Warning: Could not load score history: %v", err)
		return []ScoreEntry{}
	}
	if len(data) == 0 {
		return []ScoreEntry{}
	}

	var history []ScoreEntry
	if err := json.Unmarshal(data, &history); err != nil {
		log.Printf("Warning: Could not parse score history: %v", err)
		return []ScoreEntry{}
	}
	return history
}

// HighScore returns the stored high score or 0.
func (s *Scores) HighScore() int {
	data, err := s.items.LoadItem(keyHighScore)
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		log.Printf("Warning: Could not parse high score: %v", err)
		return 0
	}
	return v
}

func (s *Scores) updateHighScore(score int) bool {
	if score <= s.HighScore() {
		return false
	}
	if err := s.items.SaveItem(keyHighScore, []byte(strconv.Itoa(score))); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
		return false
	}
	return true
}

// Clear removes the history and the high score.
func (s *Scores) Clear() {
	if err := s.items.DeleteItem(keyScoreHistory); err != nil {
		log.Printf("Warning: Could not clear score history: %v", err)
	}
	if err := s.items.DeleteItem(keyHighScore); err != nil {
		log.Printf("Warning: Could not clear high score: %v", err)
	}
}

// Nop is used when no storage could be opened.
type Nop struct{}

func (Nop) SaveScore(int, bool, time.Time) {}
func (Nop) HighScore() int                 { return 0 }
func (Nop) ScoreHistory() []ScoreEntry     { return []ScoreEntry{} }
func (Nop) Clear()                         {}

// Memory is an in-process ItemStore, used by the headless runner when
// nothing should touch the disk.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *Memory) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) DeleteItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Recent returns up to limit entries of history, newest first.
func Recent(history []ScoreEntry, limit int) []ScoreEntry {
	out := make([]ScoreEntry, 0, min(max(limit, 0), len(history)))
	for i := len(history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, history[i])
	}
	return out
}
