// numguess is a terminal number-guessing game.
//
// Usage:
//
//	numguess list                  - List variants and their difficulty profiles
//	numguess play [variant]        - Play a variant
//	numguess menu                  - Pick a variant interactively
//	numguess scores [variant]      - Show the best finished games
//	numguess serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible targets
//	--db <path>          - Record finished games in a SQLite file (default: in memory)
//	--config <path>      - Load difficulty profiles from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file while the TUI is running
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/platform/tui"
	"github.com/vovakirdan/numguess/internal/registry"
	"github.com/vovakirdan/numguess/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var (
	appConfig config.Config
	appEnv    config.Env
	logger    *log.Logger
	logFile   *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numguess",
	Short: "Number Guess - guess the hidden number in your terminal",
	Long: `Number Guess is a terminal game: pick a difficulty, then find the
hidden number with "too high" / "too low" hints before you run out of
attempts.

Available commands:
  list     - Show all variants and their difficulty profiles
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  scores   - View the best finished games
  serve    - Start SSH server for remote play

Examples:
  numguess list
  numguess play
  numguess play marathon --difficulty hard
  numguess menu --db ~/.numguess/results.db
  numguess serve --ssh :2222`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (empty = in memory)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom profiles YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env defaults, the logger and the profiles, then registers
// every configured variant.
func setup(cmd *cobra.Command, _ []string) error {
	appEnv = config.LoadEnv()

	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.Or(appEnv.DBPath, flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfig = config.Or(appEnv.ConfigPath, flagConfig)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.Or(appEnv.LogLevel, flagLogLevel)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger = tui.NewLogger("numguess", level)

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logger.SetOutput(logFile)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg
	registry.RegisterConfig(cfg)

	logger.Debug("config loaded",
		"variants", len(cfg.Variants),
		"default_variant", cfg.DefaultVariant,
		"default_difficulty", cfg.DefaultDifficulty,
	)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// tuiLogger returns the logger for code running under the alternate screen.
// Without --log-file, log lines would be drawn over the game.
func tuiLogger() *log.Logger {
	if logFile == nil {
		return log.New(io.Discard)
	}
	return logger
}

// openStore opens the results ledger. A broken database is only a warning:
// the game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		//nolint:errcheck // Best-effort close on exit
		store.Close()
	}
}
