// Package store persists practice sessions, gestures and casts in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/runecast/internal/recognition"
	"github.com/appengine-ltd/runecast/internal/runes"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for recognition history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// StartSession opens a new session and returns its id.
func (s *Store) StartSession(ctx context.Context, source string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, source, started_at) VALUES (?, ?, ?)`,
		id, source, formatTime(s.now()))
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return id, nil
}

func (s *Store) EndSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ? WHERE id = ?`, formatTime(s.now()), id)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("end session: unknown session %q", id)
	}
	return nil
}

// RecordGesture stores one analysed gesture.
func (s *Store) RecordGesture(ctx context.Context, sessionID string, g recognition.GestureResult) error {
	r := ""
	if g.Match.Kind == runes.MatchRune {
		r = g.Match.Rune.String()
	}
	cheat := ""
	if g.Match.Cheat != runes.CheatNone {
		cheat = g.Match.Cheat.String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO gestures (session_id, at, digits, signature, outcome, rune, cheat)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, formatTime(s.now()), g.Digits, g.Signature, g.Outcome.String(), r, cheat)
	if err != nil {
		return fmt.Errorf("record gesture: %w", err)
	}
	return nil
}

// RecordCast stores one cast attempt. Fizzles are stored with spell "none".
func (s *Store) RecordCast(ctx context.Context, sessionID string, c recognition.CastResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO casts (session_id, at, runes, spell, ok, precast)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID, formatTime(s.now()), runes.Join(c.Runes), c.Spell.String(),
		boolInt(c.OK), boolInt(c.Request.Precast()))
	if err != nil {
		return fmt.Errorf("record cast: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
