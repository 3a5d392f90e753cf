package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/core"
	"github.com/vovakirdan/numguess/internal/games/guess"
)

// footerHeight is the number of lines below the game panel:
// guess input, status line and help bar.
const footerHeight = 3

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Model is the Bubble Tea model for one guessing game.
type Model struct {
	engine     *guess.Engine
	recorder   *Recorder
	session    string
	screen     *core.Screen
	input      textinput.Model
	keys       GameKeyMap
	help       help.Model
	status     string
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model driving engine.
func NewModel(engine *guess.Engine, recorder *Recorder, cfg core.RuntimeConfig, session string) Model {
	ti := textinput.New()
	ti.Prompt = "Your guess: "

	m := Model{
		engine:   engine,
		recorder: recorder,
		session:  session,
		screen:   core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-footerHeight)),
		input:    ti,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.resetInput()
	m.keys.ForPhase(engine.Phase())
	return m
}

// Init focuses the input if a game is already running.
func (m Model) Init() tea.Cmd {
	if m.engine.Phase() == guess.PhaseInProgress {
		return m.input.Focus()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		model.keys.ForPhase(model.engine.Phase())
		return model, cmd

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey dispatches a key press by phase.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) {
		m.backToMenu = true
		return m, tea.Quit
	}

	switch m.engine.Phase() {
	case guess.PhaseNotStarted:
		return m.handleSelectKey(msg)
	case guess.PhaseInProgress:
		return m.handlePlayingKey(msg)
	case guess.PhasePaused:
		return m.handlePausedKey(msg)
	default:
		return m.handleOverKey(msg)
	}
}

func (m Model) handleSelectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Easier):
		m.shiftDifficulty(-1)
	case key.Matches(msg, m.keys.Harder):
		m.shiftDifficulty(1)
	case key.Matches(msg, m.keys.Start):
		m.status = ""
		m.engine.Start()
		m.resetInput()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		if err := m.engine.Pause(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitGuess()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handlePausedKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		if err := m.engine.Resume(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handleOverKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.TryAgain):
		if err := m.engine.TryAgain(); err != nil {
			m.status = err.Error()
		}
	}
	return m, nil
}

// submitGuess sends the typed text to the engine and records a finished game.
func (m Model) submitGuess() (Model, tea.Cmd) {
	text := m.input.Value()
	m.input.Reset()

	if _, err := m.engine.GuessInput(text); err != nil {
		if errors.Is(err, guess.ErrInvalidArgument) {
			m.status = fmt.Sprintf("Please enter a whole number between 1 and %d.", m.engine.Range())
		} else {
			m.status = err.Error()
		}
		return m, nil
	}
	m.status = ""

	if m.engine.Phase() == guess.PhaseOver {
		m.input.Blur()
		//nolint:errcheck // Best-effort save, game continues regardless
		m.recorder.Record(m.session, m.engine)
	}
	return m, nil
}

// shiftDifficulty moves the staged difficulty by delta, wrapping around.
func (m *Model) shiftDifficulty(delta int) {
	all := config.Difficulties()
	idx := 0
	for i, d := range all {
		if d == m.engine.Difficulty() {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(all)) % len(all)
	m.engine.SetDifficulty(all[idx])
}

// resetInput clears the input and sizes it for the current range.
func (m *Model) resetInput() {
	m.input.Reset()
	m.input.Placeholder = fmt.Sprintf("1-%d", m.engine.Range())
	m.input.CharLimit = len(strconv.Itoa(m.engine.Range()))
	m.input.Width = m.input.CharLimit + 1
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot saves the current screen and state to a file.
func (m *Model) saveScreenshot() {
	m.engine.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".numguess", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	var b strings.Builder
	b.WriteString(m.screen.String())
	b.WriteString("\n---\n")
	if data, err := m.engine.Snapshot().YAML(); err == nil {
		b.Write(data)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.engine.Variant().ID, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(b.String()), 0o600)
	m.status = "Screenshot saved to " + dir
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	width := m.screen.Width()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteByte('\n')
	if m.engine.Phase() == guess.PhaseInProgress {
		b.WriteString(centerText(m.input.View(), width))
	}
	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString(centerText(statusStyle.Render(m.status), width))
	}
	b.WriteByte('\n')
	b.WriteString(centerText(m.help.View(m.keys), width))
	return b.String()
}

// Run starts the Bubble Tea program for engine. It reports whether the
// player left with esc to return to the menu.
func Run(engine *guess.Engine, recorder *Recorder, cfg core.RuntimeConfig, session string) (bool, error) {
	model := NewModel(engine, recorder, cfg, session)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
