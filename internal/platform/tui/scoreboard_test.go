package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ski-runner/internal/storage"
)

func TestScoreboardBackAndQuit(t *testing.T) {
	store := openModelStore(t)
	if _, err := store.SaveScore("scripted", 120); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveRun(storage.RunRecord{RunID: "r1", GameID: "scripted", Score: 120, Outcome: storage.OutcomeVictory}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewScoreboardModel(store, "scripted", 100, 30)
	if !strings.Contains(m.View(), "120") {
		t.Error("high score table should list the saved score")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRuns || !strings.Contains(m.View(), "victory") {
		t.Error("tab should switch to the runs table")
	}

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}

	quit, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if quit.(ScoreboardModel).IsGoingBack() {
		t.Error("q should quit rather than go back")
	}
}
