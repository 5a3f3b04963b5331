package store

import (
	"context"
	"database/sql"
	"time"
)

// Summary aggregates the whole history.
type Summary struct {
	Sessions     int
	Gestures     int
	Failed       int
	Casts        int
	Successful   int
	LastActivity time.Time
}

type RuneCount struct {
	Rune  string
	Count int
}

type FailedGesture struct {
	Digits   string
	Count    int
	LastSeen time.Time
}

type SpellCount struct {
	Spell string
	Casts int
	OK    int
}

func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM sessions),
		(SELECT COUNT(*) FROM gestures),
		(SELECT COUNT(*) FROM gestures WHERE outcome = 'failed'),
		(SELECT COUNT(*) FROM casts),
		(SELECT COUNT(*) FROM casts WHERE ok = 1)`).
		Scan(&sum.Sessions, &sum.Gestures, &sum.Failed, &sum.Casts, &sum.Successful)
	if err != nil {
		return Summary{}, err
	}

	var last sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT MAX(at) FROM (
		SELECT at FROM gestures UNION ALL SELECT at FROM casts)`).Scan(&last)
	if err != nil {
		return Summary{}, err
	}
	if last.Valid {
		if sum.LastActivity, err = parseTime(last.String); err != nil {
			return Summary{}, err
		}
	}
	return sum, nil
}

// RuneCounts returns how often each rune was drawn, most frequent first.
func (s *Store) RuneCounts(ctx context.Context) ([]RuneCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT rune, COUNT(*) AS n FROM gestures
		WHERE rune != ''
		GROUP BY rune
		ORDER BY n DESC, rune ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []RuneCount
	for rows.Next() {
		var rc RuneCount
		if err := rows.Scan(&rc.Rune, &rc.Count); err != nil {
			return nil, err
		}
		result = append(result, rc)
	}
	return result, rows.Err()
}

// TopFailed returns the most common unrecognised digit strings.
func (s *Store) TopFailed(ctx context.Context, limit int) ([]FailedGesture, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT digits, COUNT(*) AS n, MAX(at) FROM gestures
		WHERE outcome = 'failed'
		GROUP BY digits
		ORDER BY n DESC, digits ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []FailedGesture
	for rows.Next() {
		var fg FailedGesture
		var last string
		if err := rows.Scan(&fg.Digits, &fg.Count, &last); err != nil {
			return nil, err
		}
		if fg.LastSeen, err = parseTime(last); err != nil {
			return nil, err
		}
		result = append(result, fg)
	}
	return result, rows.Err()
}

// SpellCounts returns cast attempts per spell, fizzles included as "none".
func (s *Store) SpellCounts(ctx context.Context) ([]SpellCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT spell, COUNT(*) AS n, SUM(ok) FROM casts
		GROUP BY spell
		ORDER BY n DESC, spell ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []SpellCount
	for rows.Next() {
		var sc SpellCount
		if err := rows.Scan(&sc.Spell, &sc.Casts, &sc.OK); err != nil {
			return nil, err
		}
		result = append(result, sc)
	}
	return result, rows.Err()
}
