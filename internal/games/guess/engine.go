// Package guess implements the number guessing game engine: difficulty
// selection, attempt budgets, pause/resume, hints and the session's
// win/loss/best-score bookkeeping.
//
// The engine is a synchronous state machine. It has no rendering or input
// dependencies beyond drawing itself into a core.Screen, and every command
// either applies completely or is rejected with the state left untouched.
package guess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/core"
	"github.com/vovakirdan/numguess/internal/registry"
)

// Phase is the lifecycle phase of the current game.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhasePaused     Phase = "paused"
	PhaseOver       Phase = "over"
)

// Hint is the feedback for the last guess.
type Hint string

const (
	HintNone    Hint = ""
	HintTooHigh Hint = "TooHigh"
	HintTooLow  Hint = "TooLow"
)

// Message returns the text shown to the player for this hint.
func (h Hint) Message() string {
	switch h {
	case HintTooHigh:
		return "Too high!"
	case HintTooLow:
		return "Too low!"
	default:
		return ""
	}
}

// Rejection classes. Commands wrap one of these, so callers test with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

// Engine owns one session's game state.
type Engine struct {
	variant registry.Variant
	rnd     RandomSource

	staged  config.Difficulty // used by the next Start
	active  config.Difficulty // difficulty of the current or last game
	profile config.Profile    // profile of the current or last game

	phase    Phase
	target   int
	attempts int
	hint     Hint
	won      bool

	wins      int
	losses    int
	bestScore int
	hasBest   bool
}

// New creates an engine for the given variant in phase NotStarted with Easy staged.
func New(variant registry.Variant, rnd RandomSource) *Engine {
	return &Engine{
		variant: variant,
		rnd:     rnd,
		staged:  config.DifficultyEasy,
		active:  config.DifficultyEasy,
		profile: variant.Profile(config.DifficultyEasy),
		phase:   PhaseNotStarted,
	}
}

// Configure stages the difficulty for the next Start. A game that is in
// progress or paused keeps its parameters. Unknown labels stage Easy and
// return an error wrapping ErrInvalidArgument.
func (e *Engine) Configure(label string) error {
	d, ok := config.ParseDifficulty(label)
	e.staged = d
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q, using %s", ErrInvalidArgument, label, d)
	}
	return nil
}

// SetDifficulty stages an already parsed difficulty.
func (e *Engine) SetDifficulty(d config.Difficulty) {
	e.staged = d
}

// Start begins a new game with the staged difficulty. It may be called in
// any phase; an unfinished game is abandoned without counting as a loss.
func (e *Engine) Start() {
	e.active = e.staged
	e.profile = e.variant.Profile(e.active)
	// A misbehaving source is clamped so the target always lies in range.
	e.target = core.Clamp(e.rnd.NextInt(1, e.profile.Range), 1, e.profile.Range)
	e.attempts = 0
	e.hint = HintNone
	e.won = false
	e.phase = PhaseInProgress
}

// Pause suspends an in-progress game.
func (e *Engine) Pause() error {
	if e.phase != PhaseInProgress {
		return fmt.Errorf("%w: cannot pause while %s", ErrInvalidState, e.phase)
	}
	e.phase = PhasePaused
	return nil
}

// Resume continues a paused game. The target is never redrawn.
func (e *Engine) Resume() error {
	if e.phase != PhasePaused {
		return fmt.Errorf("%w: cannot resume while %s", ErrInvalidState, e.phase)
	}
	e.phase = PhaseInProgress
	return nil
}

// TogglePause pauses an in-progress game or resumes a paused one.
func (e *Engine) TogglePause() error {
	if e.phase == PhasePaused {
		return e.Resume()
	}
	return e.Pause()
}

// Guess submits a guess. Values outside [1, Range] are accepted and miss.
// A correct guess ends the game as a win; a wrong guess that uses up the
// last attempt ends it as a loss.
func (e *Engine) Guess(value int) (Hint, error) {
	if e.phase != PhaseInProgress {
		return e.hint, fmt.Errorf("%w: cannot guess while %s", ErrInvalidState, e.phase)
	}

	e.attempts++

	if value == e.target {
		e.hint = HintNone
		e.phase = PhaseOver
		e.won = true
		e.wins++
		if !e.hasBest || e.attempts < e.bestScore {
			e.bestScore = e.attempts
			e.hasBest = true
		}
		return e.hint, nil
	}

	if value < e.target {
		e.hint = HintTooLow
	} else {
		e.hint = HintTooHigh
	}
	if e.attempts >= e.profile.MaxAttempts {
		e.phase = PhaseOver
		e.won = false
		e.losses++
	}
	return e.hint, nil
}

// GuessInput parses text as a base-10 integer and submits it.
// Text that is not an integer is rejected with ErrInvalidArgument and
// does not consume an attempt.
func (e *Engine) GuessInput(text string) (Hint, error) {
	if e.phase != PhaseInProgress {
		return e.hint, fmt.Errorf("%w: cannot guess while %s", ErrInvalidState, e.phase)
	}
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return e.hint, fmt.Errorf("%w: %q is not a whole number", ErrInvalidArgument, text)
	}
	return e.Guess(value)
}

// TryAgain returns a finished game to NotStarted, discarding the target.
// Wins, losses and the best score are kept for the session.
func (e *Engine) TryAgain() error {
	if e.phase != PhaseOver {
		return fmt.Errorf("%w: cannot try again while %s", ErrInvalidState, e.phase)
	}
	e.phase = PhaseNotStarted
	e.target = 0
	e.attempts = 0
	e.hint = HintNone
	return nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Variant returns the variant this engine plays.
func (e *Engine) Variant() registry.Variant { return e.variant }

// Difficulty returns the staged difficulty before a game starts and the
// difficulty of the current or last game afterwards.
func (e *Engine) Difficulty() config.Difficulty {
	if e.phase == PhaseNotStarted {
		return e.staged
	}
	return e.active
}

// Profile returns the profile matching Difficulty.
func (e *Engine) Profile() config.Profile {
	if e.phase == PhaseNotStarted {
		return e.variant.Profile(e.staged)
	}
	return e.profile
}

// Range returns the upper bound of the target range.
func (e *Engine) Range() int { return e.Profile().Range }

// MaxAttempts returns the attempt budget.
func (e *Engine) MaxAttempts() int { return e.Profile().MaxAttempts }

// Attempts returns the number of guesses submitted in this game.
func (e *Engine) Attempts() int { return e.attempts }

// Remaining returns how many guesses are left in this game.
func (e *Engine) Remaining() int { return core.Max(0, e.MaxAttempts()-e.attempts) }

// Hint returns the feedback for the last guess.
func (e *Engine) Hint() Hint { return e.hint }

// Wins returns the number of games won this session.
func (e *Engine) Wins() int { return e.wins }

// Losses returns the number of games lost this session.
func (e *Engine) Losses() int { return e.losses }

// BestScore returns the fewest attempts of any win this session.
func (e *Engine) BestScore() (int, bool) { return e.bestScore, e.hasBest }

// Won reports whether the finished game was won. False unless phase is Over.
func (e *Engine) Won() bool { return e.phase == PhaseOver && e.won }

// Target reveals the secret number once the game is over.
func (e *Engine) Target() (int, bool) {
	if e.phase != PhaseOver {
		return 0, false
	}
	return e.target, true
}
