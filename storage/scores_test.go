package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingItems struct{}

func (failingItems) LoadItem(string) ([]byte, error) { return nil, errors.New("quota exceeded") }
func (failingItems) SaveItem(string, []byte) error   { return errors.New("quota exceeded") }
func (failingItems) DeleteItem(string) error         { return errors.New("quota exceeded") }

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestSaveScoreAppendsAndRaisesHighScore(t *testing.T) {
	s := NewScores(NewMemory())
	assert.Equal(t, 0, s.HighScore())
	assert.Empty(t, s.ScoreHistory())

	s.SaveScore(120, true, epoch)
	s.SaveScore(80, false, epoch.Add(time.Minute))

	history := s.ScoreHistory()
	require.Len(t, history, 2)
	assert.Equal(t, 120, history[0].Score)
	assert.True(t, history[0].Won)
	assert.Equal(t, epoch.UnixMilli(), history[0].Timestamp)
	assert.NotEmpty(t, history[0].Date)
	assert.Equal(t, 80, history[1].Score)
	assert.False(t, history[1].Won)

	// Lower score does not lower the high score
	assert.Equal(t, 120, s.HighScore())

	s.SaveScore(300, true, epoch.Add(2*time.Minute))
	assert.Equal(t, 300, s.HighScore())
}

func TestHistoryEvictsOldest(t *testing.T) {
	s := NewScores(NewMemory())
	for i := 0; i < MaxHistory+7; i++ {
		s.SaveScore(i, false, epoch.Add(time.Duration(i)*time.Second))
	}

	history := s.ScoreHistory()
	require.Len(t, history, MaxHistory)
	assert.Equal(t, 7, history[0].Score)
	assert.Equal(t, MaxHistory+6, history[len(history)-1].Score)
}

func TestClear(t *testing.T) {
	mem := NewMemory()
	s := NewScores(mem)
	s.SaveScore(50, true, epoch)
	s.Clear()

	assert.Empty(t, s.ScoreHistory())
	assert.Equal(t, 0, s.HighScore())

	// Both keys are gone rather than left behind as empty values
	_, ok := mem.items[keyScoreHistory]
	assert.False(t, ok)
	_, ok = mem.items[keyHighScore]
	assert.False(t, ok)
}

func TestMemorySavesEmptyData(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.SaveItem("k", nil))

	_, ok := mem.items["k"]
	assert.True(t, ok)
	require.NoError(t, mem.DeleteItem("k"))
	_, ok = mem.items["k"]
	assert.False(t, ok)
}

func TestFailuresDegradeSilently(t *testing.T) {
	s := NewScores(failingItems{})

	assert.NotPanics(t, func() {
		s.SaveScore(10, true, epoch)
		s.Clear()
	})
	assert.Equal(t, 0, s.HighScore())
	assert.Empty(t, s.ScoreHistory())
}

func TestCorruptedDataFallsBack(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.SaveItem(keyScoreHistory, []byte("{not json")))
	require.NoError(t, mem.SaveItem(keyHighScore, []byte("lots")))

	s := NewScores(mem)
	assert.Empty(t, s.ScoreHistory())
	assert.Equal(t, 0, s.HighScore())

	// A save starts a fresh history rather than failing
	s.SaveScore(40, false, epoch)
	assert.Len(t, s.ScoreHistory(), 1)
	assert.Equal(t, 40, s.HighScore())
}

func TestNop(t *testing.T) {
	var store ScoreStore = Nop{}
	store.SaveScore(100, true, epoch)
	store.Clear()
	assert.Equal(t, 0, store.HighScore())
	assert.Empty(t, store.ScoreHistory())
}

func TestMemoryCopiesData(t *testing.T) {
	mem := NewMemory()
	buf := []byte("abc")
	require.NoError(t, mem.SaveItem("k", buf))
	buf[0] = 'z'

	got, err := mem.LoadItem("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestRecentNewestFirst(t *testing.T) {
	history := []ScoreEntry{{Score: 1}, {Score: 2}, {Score: 3}}

	recent := Recent(history, 2)
	assert.Equal(t, []ScoreEntry{{Score: 3}, {Score: 2}}, recent)
	assert.Len(t, Recent(history, 10), 3)
	assert.Empty(t, Recent(history, 0))
	assert.Empty(t, Recent(nil, 5))
}
