package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/runecast/internal/gesture"
	"github.com/appengine-ltd/runecast/internal/recognition"
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

type fakeHistory struct {
	gestures []recognition.GestureResult
	casts    []recognition.CastResult
}

func (h *fakeHistory) RecordGesture(_ context.Context, _ string, g recognition.GestureResult) error {
	h.gestures = append(h.gestures, g)
	return nil
}

func (h *fakeHistory) RecordCast(_ context.Context, _ string, c recognition.CastResult) error {
	h.casts = append(h.casts, c)
	return nil
}

func fixedClock() time.Time { return time.Unix(5_000, 0) }

func press(t *testing.T, m trainerModel, keys ...string) trainerModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, cmd := m.Update(msg)
		if cmd != nil {
			if out := cmd(); out != nil {
				next, _ = next.(trainerModel).Update(out)
			}
		}
		m = next.(trainerModel)
	}
	return m
}

func newTestModel(h History) trainerModel {
	return newTrainerModel(AppConfig{Book: spells.Default(), History: h, SessionID: "s1"}, fixedClock)
}

func TestTrainerDrawsAndCastsHeal(t *testing.T) {
	h := &fakeHistory{}
	m := newTestModel(h)

	m = press(t, m, "8", "enter", "6", "9", "8", "enter")
	got := m.t.engine.Symbols()
	if len(got) != 2 || got[0] != runes.RuneMega || got[1] != runes.RuneVitae {
		t.Fatalf("unexpected runes %v", got)
	}

	m = press(t, m, "p", "c")
	if len(h.casts) != 1 || h.casts[0].Spell != spells.SpellHeal || !h.casts[0].Request.Precast() {
		t.Fatalf("unexpected casts %+v", h.casts)
	}
	if len(h.gestures) != 2 {
		t.Fatalf("expected 2 recorded gestures, got %d", len(h.gestures))
	}
	if !strings.Contains(strings.Join(m.t.events, "\n"), "cast Heal [precast]") {
		t.Fatalf("cast not logged: %v", m.t.events)
	}
	if len(m.t.engine.Symbols()) != 0 {
		t.Fatalf("accumulator should clear after cast")
	}
}

func TestTrainerIgnoresFiveAndEditsDigits(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "6", "5", "2", "backspace")
	if m.digits != "6" {
		t.Fatalf("digits=%q", m.digits)
	}
}

func TestTrainerReportsUnknownSymbol(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "7", "3", "7", "enter")
	if !strings.Contains(m.status, "unknown symbol") {
		t.Fatalf("status=%q", m.status)
	}
	if m.t.engine.LastFailedSequence() == "" {
		t.Fatalf("expected failed sequence")
	}
}

func TestTrainerEnterWithoutDigits(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "enter")
	if m.last != nil || m.status == "" {
		t.Fatalf("expected hint and no gesture")
	}
}

func TestTrainerMemorizeRecallReset(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "6", "enter", "m")
	if !m.t.engine.Memorizing() {
		t.Fatalf("expected memorize mode")
	}
	m = press(t, m, "r")
	if len(m.t.engine.Memorized()) != 0 || len(m.t.engine.Symbols()) != 0 {
		t.Fatalf("reset should clear runes")
	}
	m = press(t, m, "l")
	if m.status != "nothing memorized" {
		t.Fatalf("status=%q", m.status)
	}
}

func TestTrainerViewShowsSlots(t *testing.T) {
	m := newTestModel(nil)
	m = press(t, m, "6", "enter")
	view := m.View()
	for _, want := range []string{"RUNECAST", "aam", "direction:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRenderStrokeANSIRows(t *testing.T) {
	path, err := gesture.PathFromDigits("62", gesture.Point{}, 100)
	if err != nil {
		t.Fatal(err)
	}
	out := renderStrokeANSI(path, path, 16, 6)
	if n := strings.Count(out, "\n"); n != 6 {
		t.Fatalf("expected 6 rows, got %d", n)
	}
	if !strings.Contains(out, "▀") {
		t.Fatalf("expected drawn pixels")
	}
	if renderStrokeANSI(nil, nil, 16, 6) != "" {
		t.Fatalf("empty stroke should render nothing")
	}
}
