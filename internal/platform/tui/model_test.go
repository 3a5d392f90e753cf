package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/core"
	"github.com/vovakirdan/numguess/internal/games/guess"
	"github.com/vovakirdan/numguess/internal/registry"
	"github.com/vovakirdan/numguess/internal/storage"
)

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

func classicVariant() registry.Variant {
	return registry.Variant{
		ID:       "classic",
		Title:    "Classic",
		Profiles: config.DefaultConfig().Variants["classic"].Profiles,
	}
}

// fixedEngine returns a classic engine whose target is always 7.
func fixedEngine() *guess.Engine {
	return guess.New(classicVariant(), guess.RandomFunc(func(_, _ int) int { return 7 }))
}

func openMemoryStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyPause = tea.KeyMsg{Type: tea.KeyCtrlP}
	keyR     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestModelWinIsRecorded(t *testing.T) {
	store := openMemoryStore(t)
	engine := fixedEngine()
	m := NewModel(engine, NewRecorder(store, nil), testConfig, "alice-1")

	m = send(m, keyEnter)
	if engine.Phase() != guess.PhaseInProgress {
		t.Fatalf("Phase = %s after enter, want in_progress", engine.Phase())
	}

	m = send(typeText(m, "3"), keyEnter)
	if engine.Hint() != guess.HintTooLow {
		t.Errorf("Hint = %q, want TooLow", engine.Hint())
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q, want cleared after submit", m.input.Value())
	}

	m = send(typeText(m, "7"), keyEnter)
	if !engine.Won() || engine.Wins() != 1 {
		t.Fatalf("Won = %v, Wins = %d, want a recorded win", engine.Won(), engine.Wins())
	}

	results, err := store.SessionResults("alice-1")
	if err != nil {
		t.Fatalf("SessionResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	r := results[0]
	if !r.Won || r.Attempts != 2 || r.Target != 7 || r.Variant != "classic" || r.Difficulty != "easy" {
		t.Errorf("result = %+v", r)
	}
	if !strings.Contains(m.View(), "You guessed the number in 2 attempts!") {
		t.Error("View() should show the win message")
	}
}

func TestModelInvalidInputDoesNotConsumeAttempt(t *testing.T) {
	engine := fixedEngine()
	m := NewModel(engine, nil, testConfig, "s")

	m = send(m, keyEnter)
	m = send(typeText(m, "x"), keyEnter)

	if engine.Attempts() != 0 {
		t.Errorf("Attempts = %d, want 0", engine.Attempts())
	}
	if m.Status() == "" {
		t.Error("Status() should explain the rejected input")
	}
	if engine.Phase() != guess.PhaseInProgress {
		t.Errorf("Phase = %s, want in_progress", engine.Phase())
	}

	m = send(typeText(m, "7"), keyEnter)
	if m.Status() != "" {
		t.Errorf("Status() = %q, want cleared after a valid guess", m.Status())
	}
}

func TestModelPauseResume(t *testing.T) {
	engine := fixedEngine()
	m := NewModel(engine, nil, testConfig, "s")

	m = send(m, keyEnter, keyPause)
	if engine.Phase() != guess.PhasePaused {
		t.Fatalf("Phase = %s, want paused", engine.Phase())
	}

	m = send(typeText(m, "7"), keyEnter)
	if engine.Attempts() != 0 {
		t.Errorf("Attempts = %d while paused, want 0", engine.Attempts())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show the pause overlay")
	}

	m = send(m, keyPause)
	if engine.Phase() != guess.PhaseInProgress {
		t.Fatalf("Phase = %s, want in_progress", engine.Phase())
	}

	send(typeText(m, "7"), keyEnter)
	if !engine.Won() {
		t.Error("target changed across pause")
	}
}

func TestModelDifficultyPicker(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.Difficulty
	}{
		{"default", nil, config.DifficultyEasy},
		{"down", []tea.KeyMsg{keyDown}, config.DifficultyMedium},
		{"down twice", []tea.KeyMsg{keyDown, keyDown}, config.DifficultyHard},
		{"wraps forward", []tea.KeyMsg{keyDown, keyDown, keyDown}, config.DifficultyEasy},
		{"wraps back", []tea.KeyMsg{keyUp}, config.DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := fixedEngine()
			m := NewModel(engine, nil, testConfig, "s")
			m = send(m, tt.keys...)
			if engine.Difficulty() != tt.want {
				t.Errorf("Difficulty = %s, want %s", engine.Difficulty(), tt.want)
			}

			send(m, keyEnter)
			if engine.Range() != classicVariant().Profile(tt.want).Range {
				t.Errorf("Range = %d after start", engine.Range())
			}
		})
	}
}

func TestModelLossAndTryAgain(t *testing.T) {
	engine := fixedEngine()
	m := NewModel(engine, nil, testConfig, "s")

	m = send(m, keyEnter)
	for range engine.MaxAttempts() {
		m = send(typeText(m, "1"), keyEnter)
	}
	if engine.Phase() != guess.PhaseOver || engine.Losses() != 1 {
		t.Fatalf("Phase = %s, Losses = %d, want a loss", engine.Phase(), engine.Losses())
	}
	if !strings.Contains(m.View(), "The number was 7.") {
		t.Error("View() should reveal the target after a loss")
	}

	m = send(m, keyR)
	if engine.Phase() != guess.PhaseNotStarted {
		t.Fatalf("Phase = %s after r, want not_started", engine.Phase())
	}
	if engine.Losses() != 1 {
		t.Errorf("Losses = %d, want 1 kept across try again", engine.Losses())
	}
	if m.IsQuitting() {
		t.Error("try again should not quit")
	}
}

func TestModelQuitKeys(t *testing.T) {
	t.Run("q types while playing", func(t *testing.T) {
		m := NewModel(fixedEngine(), nil, testConfig, "s")
		m = send(m, keyEnter, keyQ)
		if m.IsQuitting() {
			t.Error("q should not quit while a guess is being typed")
		}
		if m.input.Value() != "q" {
			t.Errorf("input = %q, want q", m.input.Value())
		}
	})

	t.Run("q quits in picker", func(t *testing.T) {
		m := NewModel(fixedEngine(), nil, testConfig, "s")
		next, cmd := m.Update(keyQ)
		if !next.(Model).IsQuitting() || cmd == nil {
			t.Error("q should quit from the difficulty picker")
		}
	})

	t.Run("ctrl+c quits while playing", func(t *testing.T) {
		m := send(NewModel(fixedEngine(), nil, testConfig, "s"), keyEnter)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if !next.(Model).IsQuitting() {
			t.Error("ctrl+c should quit")
		}
	})

	t.Run("esc goes back", func(t *testing.T) {
		m := send(NewModel(fixedEngine(), nil, testConfig, "s"), keyEnter, keyEsc)
		if !m.BackToMenu() || m.IsQuitting() {
			t.Errorf("BackToMenu = %v, IsQuitting = %v", m.BackToMenu(), m.IsQuitting())
		}
	})
}

func TestModelResize(t *testing.T) {
	m := NewModel(fixedEngine(), nil, testConfig, "s")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-footerHeight)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 40 {
		t.Errorf("View() has %d lines, want 40", lines)
	}
}

func TestRecorderRejectsUnfinishedGame(t *testing.T) {
	store := openMemoryStore(t)
	r := NewRecorder(store, nil)
	engine := fixedEngine()
	engine.Start()

	if err := r.Record("s", engine); err == nil {
		t.Error("Record() should fail for a game in progress")
	}

	var nilRecorder *Recorder
	if err := nilRecorder.Record("s", engine); err != nil {
		t.Errorf("nil Recorder.Record() = %v, want nil", err)
	}
}

func TestNewSessionID(t *testing.T) {
	id := NewSessionID("bob")
	if !strings.HasPrefix(id, "bob-") {
		t.Errorf("NewSessionID(bob) = %q", id)
	}
	if playerName(id) != "bob" {
		t.Errorf("playerName(%q) = %q, want bob", id, playerName(id))
	}
}
