package guess

import (
	"fmt"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/core"
)

const (
	panelW = 46
	panelH = 15
)

// PanelSize returns the screen area the game panel needs.
func PanelSize() (w, h int) {
	return panelW, panelH
}

// Render draws the game panel centered on dst.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < panelW || dst.Height() < panelH {
		renderTooSmall(dst)
		return
	}

	panel := dst.Bounds().Centered(panelW, panelH)
	dst.DrawBox(panel, core.ColorGray)

	inner := core.NewRect(panel.X+1, panel.Y+1, panel.W-2, panel.H-2)
	y := inner.Y
	dst.DrawTextCentered(inner, y, "Number Guessing Game", core.ColorYellow)
	y++
	dst.DrawTextCentered(inner, y, fmt.Sprintf("%s variant", e.variant.Title), core.ColorGray)
	y += 2

	switch e.phase {
	case PhaseNotStarted:
		e.renderDifficulties(dst, inner, y)
	case PhaseInProgress, PhasePaused:
		e.renderPlaying(dst, inner, y)
	case PhaseOver:
		e.renderOver(dst, inner, y)
	}

	stats := fmt.Sprintf("Wins: %d  Losses: %d", e.wins, e.losses)
	if best, ok := e.BestScore(); ok {
		stats += fmt.Sprintf("  Best: %d", best)
	}
	dst.DrawTextCentered(inner, inner.Bottom()-1, stats, core.ColorCyan)

	if e.phase == PhasePaused {
		drawOverlay(dst, panel, "PAUSED", "Press ctrl+p to resume")
	}
}

func (e *Engine) renderDifficulties(dst *core.Screen, inner core.Rect, y int) {
	dst.DrawTextCentered(inner, y, "Try to guess the number!", core.ColorDefault)
	y += 2
	dst.DrawTextCentered(inner, y, "Select Difficulty:", core.ColorDefault)
	y++

	for _, d := range config.Difficulties() {
		p := e.variant.Profile(d)
		line := fmt.Sprintf("  %-6s (1-%d, %d tries)", d.Title(), p.Range, p.MaxAttempts)
		color := core.ColorDefault
		if d == e.staged {
			line = "> " + line[2:]
			color = difficultyColor(d)
		}
		dst.DrawTextColor(inner.X+8, y, line, color)
		y++
	}
}

func (e *Engine) renderPlaying(dst *core.Screen, inner core.Rect, y int) {
	dst.DrawTextCentered(inner, y,
		fmt.Sprintf("%s: guess a number from 1 to %d", e.active.Title(), e.profile.Range),
		difficultyColor(e.active))
	y += 2
	dst.DrawTextCentered(inner, y, fmt.Sprintf("Attempts: %d", e.attempts), core.ColorDefault)
	y++
	dst.DrawTextCentered(inner, y, fmt.Sprintf("Remaining Attempts: %d", e.Remaining()), core.ColorDefault)
	y += 2

	if msg := e.hint.Message(); msg != "" {
		color := core.ColorBlue
		if e.hint == HintTooHigh {
			color = core.ColorMagenta
		}
		dst.DrawTextCentered(inner, y, msg, color)
	}
}

func (e *Engine) renderOver(dst *core.Screen, inner core.Rect, y int) {
	if e.won {
		dst.DrawTextCentered(inner, y, "You got it!", core.ColorGreen)
		y += 2
		dst.DrawTextCentered(inner, y, fmt.Sprintf("You guessed the number in %d attempts!", e.attempts), core.ColorDefault)
	} else {
		dst.DrawTextCentered(inner, y, "Game Over!", core.ColorRed)
		y += 2
		dst.DrawTextCentered(inner, y, "You've run out of attempts.", core.ColorDefault)
		y++
		dst.DrawTextCentered(inner, y, fmt.Sprintf("The number was %d.", e.target), core.ColorDefault)
	}
	y += 2
	if best, ok := e.BestScore(); ok {
		dst.DrawTextCentered(inner, y, fmt.Sprintf("Best Score: %d attempts", best), core.ColorYellow)
	}
	y += 2
	dst.DrawTextCentered(inner, y, "Press R to try again", core.ColorGray)
}

func difficultyColor(d config.Difficulty) core.Color {
	switch d {
	case config.DifficultyMedium:
		return core.ColorYellow
	case config.DifficultyHard:
		return core.ColorRed
	default:
		return core.ColorGreen
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(dst.Bounds(), y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(dst.Bounds(), y+1, "Please resize terminal", core.ColorDefault)
}

// drawOverlay draws a boxed message centered on area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.FillRect(box)
	dst.DrawBox(box, core.ColorYellow)
	for i, line := range lines {
		dst.DrawTextCentered(box, box.Y+1+i, line, core.ColorYellow)
	}
}
