package guess

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/numguess/internal/core"
)

func screenText(e *Engine) string {
	s := core.NewScreen(80, 24)
	e.Render(s)
	return s.String()
}

func TestRenderPhases(t *testing.T) {
	e := newEngine(7)

	text := screenText(e)
	for _, want := range []string{"Number Guessing Game", "Select Difficulty:", "> Easy", "Medium (1-50, 7 tries)"} {
		if !strings.Contains(text, want) {
			t.Errorf("not-started screen missing %q", want)
		}
	}

	e.Start()
	e.Guess(9)
	text = screenText(e)
	for _, want := range []string{"Attempts: 1", "Remaining Attempts: 4", "Too high!"} {
		if !strings.Contains(text, want) {
			t.Errorf("in-progress screen missing %q", want)
		}
	}
	if strings.Contains(text, "The number was") {
		t.Error("in-progress screen must not reveal the number")
	}

	e.Pause()
	if text = screenText(e); !strings.Contains(text, "PAUSED") {
		t.Error("paused screen should show the PAUSED overlay")
	}
	e.Resume()

	e.Guess(7)
	text = screenText(e)
	for _, want := range []string{"You guessed the number in 2 attempts!", "Best Score: 2 attempts", "Wins: 1  Losses: 0"} {
		if !strings.Contains(text, want) {
			t.Errorf("win screen missing %q", want)
		}
	}
}

func TestRenderLossRevealsTarget(t *testing.T) {
	e := newEngine(7)
	e.Start()
	for i := 0; i < 5; i++ {
		e.Guess(1)
	}

	text := screenText(e)
	for _, want := range []string{"Game Over!", "The number was 7.", "Press R to try again"} {
		if !strings.Contains(text, want) {
			t.Errorf("loss screen missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newEngine(7)
	s := core.NewScreen(30, 10)
	e.Render(s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Error("small screen should show a resize message")
	}
}

func TestRenderColorsSelectedDifficulty(t *testing.T) {
	e := newEngine(7)
	e.Configure("hard")

	s := core.NewScreen(80, 24)
	e.Render(s)

	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		if i := strings.Index(row, "> Hard"); i >= 0 {
			x := utf8.RuneCountInString(row[:i])
			if c := s.GetCell(x, y).Color; c != core.ColorRed {
				t.Errorf("selected hard row color = %v, want red", c)
			}
			return
		}
	}
	t.Error("selected difficulty marker not found")
}
