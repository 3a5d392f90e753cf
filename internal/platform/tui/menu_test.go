package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/registry"
	"github.com/vovakirdan/numguess/internal/storage"
)

func registerDefaults(t *testing.T) []registry.Variant {
	t.Helper()
	registry.RegisterConfig(config.DefaultConfig())
	variants := registry.List()
	if len(variants) < 2 {
		t.Fatalf("want at least two default variants, got %d", len(variants))
	}
	return variants
}

func TestMenuSelectsVariant(t *testing.T) {
	variants := registerDefaults(t)

	m := NewMenuModel(nil, testConfig)
	for _, msg := range []tea.KeyMsg{keyDown, keyEnter} {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after enter")
	}
	if sel.VariantID != variants[1].ID {
		t.Errorf("VariantID = %q, want %q", sel.VariantID, variants[1].ID)
	}
}

func TestMenuActions(t *testing.T) {
	registerDefaults(t)

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		quit       bool
		scoreboard bool
	}{
		{"q", keyQ, true, false},
		{"esc", keyEsc, true, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, false, true},
		{"up at top", keyUp, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := NewMenuModel(nil, testConfig).Update(tt.msg)
			m := next.(MenuModel)
			if m.IsQuitting() != tt.quit {
				t.Errorf("IsQuitting = %v, want %v", m.IsQuitting(), tt.quit)
			}
			if m.WantsScoreboard() != tt.scoreboard {
				t.Errorf("WantsScoreboard = %v, want %v", m.WantsScoreboard(), tt.scoreboard)
			}
		})
	}
}

func TestScoreboardSwitchesDifficulty(t *testing.T) {
	variants := registerDefaults(t)
	store := openMemoryStore(t)

	first := variants[0].ID
	for _, attempts := range []int{4, 2} {
		if _, err := store.SaveResult(storage.Result{
			Session: "carol-1", Variant: first, Difficulty: "easy",
			Won: true, Attempts: attempts, MaxAttempts: 5, Target: 3,
		}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if got := len(m.Results()); got != 2 {
		t.Fatalf("len(Results) = %d, want 2", got)
	}
	if m.Results()[0].Attempts != 2 {
		t.Errorf("best result has %d attempts, want 2", m.Results()[0].Attempts)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.Difficulty() != config.DifficultyMedium {
		t.Errorf("Difficulty = %s, want medium", m.Difficulty())
	}
	if len(m.Results()) != 0 {
		t.Errorf("len(Results) = %d on medium, want 0", len(m.Results()))
	}

	next, _ = m.Update(keyEsc)
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}

func TestSessionKeepsEnginePerVariant(t *testing.T) {
	registerDefaults(t)

	update := func(m SessionModel, msgs ...tea.KeyMsg) SessionModel {
		for _, msg := range msgs {
			next, _ := m.Update(msg)
			m = next.(SessionModel)
		}
		return m
	}

	m := NewSessionModel(nil, nil, testConfig, "dave")
	m = update(m, keyEnter)
	if m.view != viewGame {
		t.Fatalf("view = %d after selecting a variant, want game", m.view)
	}
	first := m.game.engine

	m = update(m, keyEsc)
	if m.view != viewMenu {
		t.Fatalf("view = %d after esc, want menu", m.view)
	}

	m = update(m, keyEnter)
	if m.game.engine != first {
		t.Error("re-entering a variant should reuse the session engine")
	}
	if len(m.engines) != 1 {
		t.Errorf("len(engines) = %d, want 1", len(m.engines))
	}

	m = update(m, keyEsc, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScoreboard {
		t.Fatalf("view = %d after tab, want scoreboard", m.view)
	}
	m = update(m, keyEsc)
	if m.view != viewMenu {
		t.Errorf("view = %d after leaving scoreboard, want menu", m.view)
	}
}
