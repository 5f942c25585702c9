package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/yamabird/internal/storage"
)

type fakeScores struct {
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	err    error
	loads  int
}

func (f *fakeScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	f.loads++
	return f.scores, f.err
}

func (f *fakeScores) GetGameStats(string) (*storage.GameStats, error) {
	if f.stats == nil {
		return nil, errors.New("no stats")
	}
	return f.stats, nil
}

func TestScoreRows(t *testing.T) {
	at := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{Player: "alice", Score: 12, CreatedAt: at},
		{Player: "", Score: 3, CreatedAt: at},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	expected := []string{"#1", "alice", "12", "Mar 04 15:30"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" || rows[1][1] != "-" {
		t.Errorf("rows[1] = %v, expected rank #2 and placeholder player", rows[1])
	}
}

func TestScoreboardView(t *testing.T) {
	tests := []struct {
		name     string
		source   *fakeScores
		expected []string
	}{
		{
			name: "scores",
			source: &fakeScores{
				scores: []storage.ScoreEntry{{Player: "alice", Score: 9, CreatedAt: time.Now()}},
				stats:  &storage.GameStats{GamesCount: 4, Players: 2, HighScore: 9, AvgScore: 3.5},
			},
			expected: []string{"YAMABIRD HIGH SCORES", "alice", "4 runs by 2 players, best 9, average 3.5"},
		},
		{
			name:     "empty",
			source:   &fakeScores{},
			expected: []string{"No scores recorded yet."},
		},
		{
			name:     "error",
			source:   &fakeScores{err: errors.New("disk on fire")},
			expected: []string{"Could not load scores:", "disk on fire"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(tc.source, storage.GameID, 80, 24)
			view := m.View()
			for _, want := range tc.expected {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q:\n%s", want, view)
				}
			}
		})
	}
}

func TestScoreboardRefreshAndQuit(t *testing.T) {
	source := &fakeScores{}
	m := NewScoreboardModel(source, storage.GameID, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if source.loads != 2 {
		t.Errorf("loads = %d after refresh, expected 2", source.loads)
	}

	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !next.(ScoreboardModel).IsQuitting() {
		t.Error("q did not quit")
	}
}

func TestScoreboardWithoutSource(t *testing.T) {
	m := NewScoreboardModel(nil, storage.GameID, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected empty message without a source")
	}
}
