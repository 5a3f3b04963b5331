package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/runecast/internal/config"
	"github.com/appengine-ltd/runecast/internal/gesture"
	"github.com/appengine-ltd/runecast/internal/recognition"
	"github.com/appengine-ltd/runecast/internal/replay"
	"github.com/appengine-ltd/runecast/internal/report"
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
	"github.com/appengine-ltd/runecast/internal/store"
)

const defaultStatsTop = 10

var (
	replayStore bool
	statsTop    int
	configForce bool
)

func reportOptions(w io.Writer) report.Options {
	return report.Options{Color: !noColor && report.ShouldUseColor(w)}
}

func newSpellsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spells",
		Short: "List every spell and how to draw it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return report.WriteCatalog(out, spells.Catalog(), reportOptions(out))
		},
	}
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look a spell up by name",
		Args:  cobra.ExactArgs(1),
		RunE:  runLookupCmd,
	}
}

func runLookupCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	book := newBook(spells.Catalog(), log)
	out := cmd.OutOrStdout()
	id, err := book.Resolve(args[0])
	if errors.Is(err, spells.ErrUnknownSpell) {
		if suggestions := book.Suggest(args[0], 3); len(suggestions) > 0 {
			logErrf(cmd.ErrOrStderr(), "did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return err
	}
	if err != nil {
		return err
	}
	for _, def := range spells.Catalog() {
		if def.ID == id {
			return report.WriteSpell(out, def, reportOptions(out))
		}
	}
	return fmt.Errorf("spell %s has no catalog entry", id)
}

func newSignatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signature <digits>",
		Short: "Resolve a keypad direction string to a rune",
		Args:  cobra.ExactArgs(1),
		RunE:  runSignatureCmd,
	}
}

func runSignatureCmd(cmd *cobra.Command, args []string) error {
	sig, err := gesture.ParseSignature(args[0])
	if err != nil {
		return fmt.Errorf("invalid signature %q: %w", args[0], err)
	}
	m := runes.Lookup(sig)
	out := cmd.OutOrStdout()
	switch {
	case m.Kind == runes.MatchRune && m.Cheat != runes.CheatNone:
		_, err = fmt.Fprintf(out, "%d: rune %s (cheat %s)\n", sig, m.Rune, m.Cheat)
	case m.Kind == runes.MatchRune:
		_, err = fmt.Fprintf(out, "%d: rune %s\n", sig, m.Rune)
	case m.Kind == runes.MatchCheat && !m.Failed():
		_, err = fmt.Fprintf(out, "%d: cheat %s\n", sig, m.Cheat)
	case m.Kind == runes.MatchCheat:
		_, err = fmt.Fprintf(out, "%d: cheat %s (fails as a rune)\n", sig, m.Cheat)
	default:
		_, err = fmt.Fprintf(out, "%d: no match\n", sig)
	}
	return err
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Run a recorded session through the recognizer",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplayCmd,
	}
	cmd.Flags().BoolVar(&replayStore, "store", false, "write the replayed gestures and casts to history")
	return cmd
}

// printCaster accepts every cast.
type printCaster struct{}

func (printCaster) Cast(recognition.CastRequest) bool { return true }

type cheatPrinter struct {
	w io.Writer
}

func (c cheatPrinter) ReportCheat(code runes.CheatCode) {
	_, _ = fmt.Fprintf(c.w, "    cheat %s\n", code)
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	player := replay.NewPlayer(newBook(spells.Catalog(), log), cfg.Engine(), recognition.Collaborators{
		Caster: printCaster{},
		Cheats: cheatPrinter{w: out},
		Log:    log.WithPrefix("engine"),
	})
	results, err := player.Run(cmd.Context(), rec, rec.RecordedAt)
	if err != nil {
		return err
	}
	for _, res := range results {
		if _, err := fmt.Fprintln(out, describeStep(res)); err != nil {
			return err
		}
	}

	if replayStore {
		return storeReplay(cmd.Context(), cfg, results)
	}
	return nil
}

func describeStep(res replay.StepResult) string {
	prefix := fmt.Sprintf("#%-3d %-8s", res.Index+1, res.Step.Kind)
	switch {
	case res.Gesture != nil:
		g := res.Gesture
		digits := g.Digits
		if digits == "" {
			digits = "(empty)"
		}
		switch g.Match.Kind {
		case runes.MatchRune:
			return fmt.Sprintf("%s %s -> %s", prefix, digits, g.Match.Rune)
		case runes.MatchCheat:
			return fmt.Sprintf("%s %s -> cheat %s", prefix, digits, g.Match.Cheat)
		default:
			return fmt.Sprintf("%s %s -> no match", prefix, digits)
		}
	case res.Cast != nil:
		c := res.Cast
		if c.Spell == spells.SpellNone {
			return fmt.Sprintf("%s [%s] -> fizzle", prefix, runes.Join(c.Runes))
		}
		flag := ""
		if c.Request.Precast() {
			flag = " (precast)"
		}
		return fmt.Sprintf("%s [%s] -> %s%s", prefix, runes.Join(c.Runes), c.Spell, flag)
	default:
		return fmt.Sprintf("%s ok=%t", prefix, res.OK)
	}
}

func storeReplay(ctx context.Context, cfg config.Config, results []replay.StepResult) error {
	st, session, err := openSession(ctx, cfg, "replay")
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	for _, res := range results {
		switch {
		case res.Gesture != nil:
			err = st.RecordGesture(ctx, session, *res.Gesture)
		case res.Cast != nil:
			err = st.RecordCast(ctx, session, *res.Cast)
		}
		if err != nil {
			return err
		}
	}
	return st.EndSession(ctx, session)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recognition history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsTop, "top", defaultStatsTop, "number of unrecognised gestures to list")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	st, err := store.Open(ctx, cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf(cmd.ErrOrStderr(), "failed to close db: %v\n", cerr)
		}
	}()

	var data report.Stats
	if data.Summary, err = st.Summary(ctx); err != nil {
		return err
	}
	if data.Runes, err = st.RuneCounts(ctx); err != nil {
		return err
	}
	if data.Spells, err = st.SpellCounts(ctx); err != nil {
		return err
	}
	if data.Failed, err = st.TopFailed(ctx, statsTop); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return report.WriteStats(out, data, time.Now(), reportOptions(out))
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), configPath)
			return err
		},
	})
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Args:  cobra.NoArgs,
		RunE:  runConfigInitCmd,
	}
	initCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func runConfigInitCmd(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := config.Save(configPath, config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return err
}
