// Package main provides the runecast CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/runecast/internal/config"
	"github.com/appengine-ltd/runecast/internal/logging"
	"github.com/appengine-ltd/runecast/internal/spells"
	"github.com/appengine-ltd/runecast/internal/store"
	"github.com/appengine-ltd/runecast/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	dbPath     string
	logLevel   string
	logFile    string
	noColor    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "runecast",
		Short:         "Draw runes, cast spells",
		Version:       fmt.Sprintf("%s (%s) %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrainerCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultConfigPath(), "config file")
	pf.StringVar(&dbPath, "db", "", "history database (overrides config)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&noColor, "no-color", false, "disable colored tables")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "trainer",
		Short: "Keypad trainer in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTrainerCmd,
	})
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newSpellsCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newSignatureCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadConfig reads the config file and env, then applies explicit flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.DBPath = dbPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// newLogger builds the process logger. Interactive screens pass quiet so
// log lines never land on top of the UI unless a log file is set.
func newLogger(cfg config.Config, quiet bool) (*logging.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if logFile == "" {
		if quiet {
			return logging.Discard(), func() {}, nil
		}
		return logging.New(os.Stderr, level), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(f, level), func() { _ = f.Close() }, nil
}

// newBook builds the spell book for one command. Catalog conflicts are
// logged at warn.
func newBook(defs []spells.Definition, log *logging.Logger) *spells.Book {
	return spells.Build(defs, log.WithPrefix("catalog"))
}

// openSession opens the history store and starts a session for source.
func openSession(ctx context.Context, cfg config.Config, source string) (*store.Store, string, error) {
	st, err := store.Open(ctx, cfg.Storage.DBPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open db: %w", err)
	}
	id, err := st.StartSession(ctx, source)
	if err != nil {
		_ = st.Close()
		return nil, "", err
	}
	return st, id, nil
}

func closeSession(st *store.Store, id string, log *logging.Logger) {
	if err := st.EndSession(context.Background(), id); err != nil {
		log.Warnf("failed to end session: %v", err)
	}
	if err := st.Close(); err != nil {
		log.Warnf("failed to close db: %v", err)
	}
}

func runTrainerCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	st, session, err := openSession(cmd.Context(), cfg, "trainer")
	if err != nil {
		return err
	}
	defer closeSession(st, session, log)

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Book:      newBook(spells.Catalog(), log),
		Engine:    cfg.Engine(),
		Log:       log.WithPrefix("engine"),
		History:   st,
		SessionID: session,
	})
	if err := app.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func logErrf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
