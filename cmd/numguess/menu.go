package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numguess/internal/games/guess"
	"github.com/vovakirdan/numguess/internal/platform/tui"
	"github.com/vovakirdan/numguess/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc in a game returns to the menu; wins, losses and best score are
kept per variant until you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  numguess menu
  numguess menu --db ~/.numguess/results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	recorder := tui.NewRecorder(store, tuiLogger())
	session := tui.NewSessionID("")
	engines := make(map[string]*guess.Engine)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("error running menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		engine, ok := engines[menuResult.VariantID]
		if !ok {
			variant, getErr := registry.Get(menuResult.VariantID)
			if getErr != nil {
				logger.Error("menu returned unknown variant", "variant", menuResult.VariantID)
				continue
			}
			engine = newEngine(variant)
			engines[menuResult.VariantID] = engine
		}

		backToMenu, runErr := tui.Run(engine, recorder, cfg, session)
		if runErr != nil {
			return fmt.Errorf("error running game: %w", runErr)
		}
		if !backToMenu {
			return nil
		}
	}
}
