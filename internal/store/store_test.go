package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/appengine-ltd/runecast/internal/recognition"
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "runecast.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "runecast.db")
	for i := 0; i < 2; i++ {
		s, err := Open(context.Background(), path)
		if err != nil {
			t.Fatalf("Open #%d: %v", i, err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
}

func TestRecordAndAggregate(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	id, err := s.StartSession(ctx, "test")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	gestures := []recognition.GestureResult{
		{Digits: "6", Signature: 6, Match: runes.Lookup(6), Outcome: recognition.OutcomeRuneAppended},
		{Digits: "6", Signature: 6, Match: runes.Lookup(6), Outcome: recognition.OutcomeRuneAppended},
		{Digits: "698", Signature: 698, Match: runes.Lookup(698), Outcome: recognition.OutcomeRuneAppended},
		{Digits: "5", Signature: 5, Outcome: recognition.OutcomeFailed},
		{Digits: "5", Signature: 5, Outcome: recognition.OutcomeFailed},
		{Digits: "77", Signature: 77, Outcome: recognition.OutcomeFailed},
		{Digits: "626262", Signature: 626262, Match: runes.Lookup(626262), Outcome: recognition.OutcomeCheat},
	}
	for _, g := range gestures {
		if err := s.RecordGesture(ctx, id, g); err != nil {
			t.Fatalf("RecordGesture: %v", err)
		}
	}
	casts := []recognition.CastResult{
		{Runes: []runes.Rune{runes.RuneMega, runes.RuneVitae}, Spell: spells.SpellHeal, OK: true,
			Request: recognition.CastRequest{Spell: spells.SpellHeal, Flags: recognition.CastPrecast}},
		{Runes: []runes.Rune{runes.RuneAam}},
	}
	for _, c := range casts {
		if err := s.RecordCast(ctx, id, c); err != nil {
			t.Fatalf("RecordCast: %v", err)
		}
	}
	if err := s.EndSession(ctx, id); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	sum, err := s.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Sessions != 1 || sum.Gestures != 7 || sum.Failed != 3 || sum.Casts != 2 || sum.Successful != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if sum.LastActivity.IsZero() {
		t.Fatalf("expected last activity")
	}

	counts, err := s.RuneCounts(ctx)
	if err != nil {
		t.Fatalf("RuneCounts: %v", err)
	}
	if len(counts) != 2 || counts[0] != (RuneCount{Rune: "aam", Count: 2}) || counts[1] != (RuneCount{Rune: "vitae", Count: 1}) {
		t.Fatalf("unexpected rune counts %+v", counts)
	}

	failed, err := s.TopFailed(ctx, 1)
	if err != nil {
		t.Fatalf("TopFailed: %v", err)
	}
	if len(failed) != 1 || failed[0].Digits != "5" || failed[0].Count != 2 {
		t.Fatalf("unexpected failures %+v", failed)
	}

	spellCounts, err := s.SpellCounts(ctx)
	if err != nil {
		t.Fatalf("SpellCounts: %v", err)
	}
	if len(spellCounts) != 2 {
		t.Fatalf("expected heal and none, got %+v", spellCounts)
	}
	for _, sc := range spellCounts {
		switch sc.Spell {
		case "heal":
			if sc.Casts != 1 || sc.OK != 1 {
				t.Fatalf("heal counts %+v", sc)
			}
		case "none":
			if sc.Casts != 1 || sc.OK != 0 {
				t.Fatalf("fizzle counts %+v", sc)
			}
		default:
			t.Fatalf("unexpected spell %q", sc.Spell)
		}
	}
}

func TestEndUnknownSession(t *testing.T) {
	s := openTestStore(t)
	if err := s.EndSession(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error for unknown session")
	}
}

func TestEmptySummary(t *testing.T) {
	s := openTestStore(t)
	sum, err := s.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}
