package guess

import (
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/numguess/internal/config"
)

// Snapshot is a read-only, serializable view of the engine state.
// Target is only filled in once the game is over.
type Snapshot struct {
	Variant     string            `yaml:"variant"`
	Difficulty  config.Difficulty `yaml:"difficulty"`
	Phase       Phase             `yaml:"phase"`
	Range       int               `yaml:"range"`
	MaxAttempts int               `yaml:"max_attempts"`
	Attempts    int               `yaml:"attempts"`
	Remaining   int               `yaml:"remaining"`
	Hint        Hint              `yaml:"hint,omitempty"`
	Wins        int               `yaml:"wins"`
	Losses      int               `yaml:"losses"`
	BestScore   *int              `yaml:"best_score,omitempty"`
	Won         bool              `yaml:"won,omitempty"`
	Target      *int              `yaml:"target,omitempty"`
}

// Snapshot returns the current state projection.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Variant:     e.variant.ID,
		Difficulty:  e.Difficulty(),
		Phase:       e.phase,
		Range:       e.Range(),
		MaxAttempts: e.MaxAttempts(),
		Attempts:    e.attempts,
		Remaining:   e.Remaining(),
		Hint:        e.hint,
		Wins:        e.wins,
		Losses:      e.losses,
		Won:         e.Won(),
	}
	if best, ok := e.BestScore(); ok {
		s.BestScore = &best
	}
	if target, ok := e.Target(); ok {
		s.Target = &target
	}
	return s
}

// YAML encodes the snapshot.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
