package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numguess/internal/games/guess"
	"github.com/vovakirdan/numguess/internal/registry"
	"github.com/vovakirdan/numguess/internal/storage"
)

// Recorder writes finished games to the results ledger.
// A Recorder without a store only logs.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger
}

// NewRecorder creates a recorder. Both arguments may be nil.
func NewRecorder(store *storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger}
}

// Record saves the engine's last game. The engine must be in phase Over.
func (r *Recorder) Record(session string, e *guess.Engine) error {
	if r == nil {
		return nil
	}

	target, ok := e.Target()
	if !ok {
		return fmt.Errorf("tui: cannot record game in phase %s", e.Phase())
	}

	res := storage.Result{
		Session:     session,
		Variant:     e.Variant().ID,
		Difficulty:  string(e.Difficulty()),
		Won:         e.Won(),
		Attempts:    e.Attempts(),
		MaxAttempts: e.MaxAttempts(),
		Target:      target,
	}

	r.logger.Info("game finished",
		"session", session,
		"variant", res.Variant,
		"difficulty", res.Difficulty,
		"won", res.Won,
		"attempts", res.Attempts,
	)

	if r.store == nil {
		return nil
	}
	if _, err := r.store.SaveResult(res); err != nil {
		r.logger.Warn("could not record result", "session", session, "error", err)
		return err
	}
	return nil
}

// NewEngine creates an engine for variant. A zero seed picks a time-based one.
func NewEngine(variant registry.Variant, seed int64) *guess.Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return guess.New(variant, guess.NewSeededSource(seed))
}

// NewSessionID returns an identifier for one player session.
func NewSessionID(user string) string {
	if user == "" {
		user = os.Getenv("USER")
	}
	if user == "" {
		user = "local"
	}
	return fmt.Sprintf("%s-%d", user, time.Now().UnixNano())
}
