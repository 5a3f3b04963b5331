//go:build cgo

package main

import (
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/runecast/internal/config"
	"github.com/appengine-ltd/runecast/internal/gui"
	"github.com/appengine-ltd/runecast/internal/spells"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the drawing pad",
		Args:  cobra.NoArgs,
		RunE:  runPlayCmd,
	}
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	st, session, err := openSession(cmd.Context(), cfg, "pad")
	if err != nil {
		return err
	}
	defer closeSession(st, session, log)

	log.Infof("session %s started", session)
	app := gui.NewApp(gui.AppConfig{
		Version:       version,
		Book:          newBook(spells.Catalog(), log),
		Engine:        cfg.Engine(),
		Log:           log.WithPrefix("pad"),
		History:       st,
		SessionID:     session,
		SoundDir:      cfg.Audio.SoundDir,
		FontDir:       config.DefaultFontDir(),
		RecordingsDir: cfg.Storage.RecordingsDir,
	})
	return app.Run()
}
