package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numguess/internal/games/guess"
)

// GameKeyMap defines the key bindings of the game screen.
// Bindings that make no sense in the current phase are disabled, which
// also hides them from the help bar.
type GameKeyMap struct {
	Easier    key.Binding
	Harder    key.Binding
	Start     key.Binding
	Submit    key.Binding
	Pause     key.Binding
	TryAgain  key.Binding
	Back      key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Easier: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "easier"),
		),
		Harder: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "harder"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		Pause: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pause/resume"),
		),
		TryAgain: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "try again"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		// While typing a guess "q" is text, so only ctrl+c quits.
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ForPhase enables the bindings that apply to the given phase.
func (k *GameKeyMap) ForPhase(p guess.Phase) {
	notStarted := p == guess.PhaseNotStarted
	playing := p == guess.PhaseInProgress
	paused := p == guess.PhasePaused
	over := p == guess.PhaseOver

	k.Easier.SetEnabled(notStarted)
	k.Harder.SetEnabled(notStarted)
	k.Start.SetEnabled(notStarted)
	k.Submit.SetEnabled(playing)
	k.Pause.SetEnabled(playing || paused)
	k.TryAgain.SetEnabled(over)
	k.Back.SetEnabled(true)
	k.Quit.SetEnabled(!playing)
	k.Interrupt.SetEnabled(playing)
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Easier, k.Harder, k.Start, k.Submit, k.Pause, k.TryAgain, k.Back, k.Quit, k.Interrupt}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Easier, k.Harder, k.Start},
		{k.Submit, k.Pause, k.TryAgain},
		{k.Back, k.Quit, k.Interrupt},
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
