package replay

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/appengine-ltd/runecast/internal/gesture"
	"github.com/appengine-ltd/runecast/internal/recognition"
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

func mustGesture(t *testing.T, digits string, atMS int64) Step {
	t.Helper()
	step, err := GestureFromDigits(digits, atMS, 40)
	if err != nil {
		t.Fatalf("GestureFromDigits(%q): %v", digits, err)
	}
	return step
}

func TestLoadRejectsNewerFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	if err := os.WriteFile(path, []byte(`{"format_version": 9, "steps": []}`), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestValidateRejectsBackwardsTime(t *testing.T) {
	rec := Recording{Steps: []Step{
		{Kind: StepCast, AtMS: 500},
		{Kind: StepReset, AtMS: 100},
	}}
	if err := rec.Validate(); err == nil {
		t.Fatalf("expected error")
	}
	rec = Recording{Steps: []Step{{Kind: "wave"}}}
	if err := rec.Validate(); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestSaveLoadKeepsSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rec.json")
	rec := Recording{
		Name:       "heal",
		RecordedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Steps: []Step{
			mustGesture(t, "8", 0),
			{Kind: StepCast, AtMS: 5000, Precast: true},
		},
	}
	if err := Save(path, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "heal" || len(got.Steps) != 2 || !got.Steps[1].Precast {
		t.Fatalf("unexpected recording %+v", got)
	}
	if len(got.Steps[0].Samples) != len(rec.Steps[0].Samples) {
		t.Fatalf("samples lost: %d vs %d", len(got.Steps[0].Samples), len(rec.Steps[0].Samples))
	}
}

func TestPlayerCastsRecordedSpell(t *testing.T) {
	var casts []recognition.CastRequest
	c := recognition.Collaborators{
		Caster: recognition.CasterFunc(func(req recognition.CastRequest) bool {
			casts = append(casts, req)
			return true
		}),
	}
	rec := Recording{FormatVersion: FormatVersion, Steps: []Step{
		mustGesture(t, "8", 0),
		mustGesture(t, "698", 2000),
		{Kind: StepCast, AtMS: 4000, Precast: true},
	}}

	p := NewPlayer(spells.Default(), recognition.DefaultConfig(), c)
	results, err := p.Run(context.Background(), rec, time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if r := results[1].Gesture; r == nil || r.Match.Rune != runes.RuneVitae {
		t.Fatalf("expected vitae, got %+v", results[1].Gesture)
	}
	if len(casts) != 1 || casts[0].Spell != spells.SpellHeal || !casts[0].Precast() {
		t.Fatalf("unexpected casts %+v", casts)
	}
	if !results[2].OK {
		t.Fatalf("cast step should be OK")
	}
}

func TestPlayerStopsOnCancelledContext(t *testing.T) {
	rec := Recording{Steps: []Step{{Kind: StepReset}, {Kind: StepReset}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPlayer(nil, recognition.DefaultConfig(), recognition.Collaborators{})
	results, err := p.Run(ctx, rec, time.Now())
	if !errors.Is(err, context.Canceled) || len(results) != 0 {
		t.Fatalf("expected immediate cancel, got %d results err=%v", len(results), err)
	}
}

func TestRecorderCapturesLiveInput(t *testing.T) {
	start := time.Unix(0, 0)
	r := NewRecorder("live", start)
	r.AddSample(gesture.Point{X: 1, Y: 1}, start)
	r.BeginGesture(start.Add(10 * time.Millisecond))
	r.AddSample(gesture.Point{X: 1, Y: 1}, start.Add(10*time.Millisecond))
	r.AddSample(gesture.Point{X: 200, Y: 1}, start.Add(60*time.Millisecond))
	r.EndGesture(true)
	r.Action(StepCast, start.Add(time.Second), false)

	rec := r.Recording()
	if len(rec.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(rec.Steps))
	}
	g := rec.Steps[0]
	if g.Kind != StepGesture || len(g.Samples) != 2 || !g.Precast || g.Samples[1].AtMS != 60 {
		t.Fatalf("unexpected gesture step %+v", g)
	}
	if rec.Steps[1].AtMS != 1000 {
		t.Fatalf("cast offset=%d", rec.Steps[1].AtMS)
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
