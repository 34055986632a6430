package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/rocket-dodge/internal/games/dodge"
	"github.com/vovakirdan/rocket-dodge/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	ids := make([]string, 0, len(m.boards))
	for _, g := range m.boards {
		ids = append(ids, g.ID)
	}
	assert.Contains(t, ids, "dodge")
	assert.NotContains(t, ids, "dodge_versus", "two-player games share the match history tab")
	assert.Equal(t, versusTab, ids[len(ids)-1])
}

func TestScoreboardShowsScoresAndMatches(t *testing.T) {
	store := testStore(t)
	_, err := store.SaveScore("dodge", 321, 5, false)
	require.NoError(t, err)
	_, err = store.SaveVersusResult(storage.VersusResult{Winner: 2, P1Lives: 0, P2Lives: 2, Passed: 17, Duration: 45 * time.Second})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	require.Len(t, m.scores, 1)
	assert.Contains(t, m.View(), "321")
	require.NotNil(t, m.stats)
	assert.Contains(t, m.View(), "Runs: 1")

	// Shift+tab wraps to the match history.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	require.True(t, m.onVersusTab())
	require.Len(t, m.matches, 1)

	view := m.View()
	assert.Contains(t, view, "MATCH HISTORY")
	assert.Contains(t, view, "P2 wins: 1")
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(testStore(t), 60, 24)
	assert.Contains(t, m.View(), "No scores recorded yet.")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Contains(t, m.View(), "No matches recorded yet.")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	next, _ := m.Update(runeKey('b'))
	assert.True(t, next.(ScoreboardModel).IsGoingBack())

	next, _ = m.Update(runeKey('q'))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}
