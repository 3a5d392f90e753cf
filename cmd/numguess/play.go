package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/core"
	"github.com/vovakirdan/numguess/internal/games/guess"
	"github.com/vovakirdan/numguess/internal/platform/tui"
	"github.com/vovakirdan/numguess/internal/registry"
)

var (
	flagVariant    string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default from the profiles file).

Controls:
  Up/Down    - Change difficulty
  Enter      - Start / submit guess
  Ctrl+P     - Pause / resume
  R          - Try again (after game over)
  Ctrl+S     - Save a screenshot
  Esc        - Leave
  Q/Ctrl+C   - Quit

Difficulty options:
  easy, medium, hard (unknown values fall back to easy)

Examples:
  numguess play
  numguess play quick
  numguess play --variant marathon --difficulty hard
  numguess play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", "", "Variant to play (see 'numguess list')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := config.Or(flagVariant, appConfig.DefaultVariant)
	if len(args) == 1 {
		variantID = args[0]
	}

	variant, err := registry.Get(variantID)
	if err != nil {
		return fmt.Errorf("%w\nRun 'numguess list' to see available variants", err)
	}

	engine := newEngine(variant)

	store := openStore()
	defer closeStore(store)

	_, err = tui.Run(engine, tui.NewRecorder(store, tuiLogger()), runtimeConfig(), tui.NewSessionID(""))
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// newEngine creates an engine with the requested or configured difficulty staged.
func newEngine(variant registry.Variant) *guess.Engine {
	engine := tui.NewEngine(variant, flagSeed)

	label := config.Or(flagDifficulty, string(appConfig.DefaultDifficulty))
	if err := engine.Configure(label); err != nil {
		logger.Warn("unknown difficulty, using easy", "difficulty", label)
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using easy\n", label)
	}
	return engine
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
