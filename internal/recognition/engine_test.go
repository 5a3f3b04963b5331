package recognition

import (
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/runecast/internal/gesture"
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

type fakeWorld struct {
	precast  bool
	played   []runes.Rune
	fizzles  int
	cheats   []runes.CheatCode
	requests []CastRequest
	castOK   bool
	debug    []string
}

func (w *fakeWorld) PrecastHeld() bool                 { return w.precast }
func (w *fakeWorld) PlayRune(r runes.Rune)             { w.played = append(w.played, r) }
func (w *fakeWorld) PlayFizzle()                       { w.fizzles++ }
func (w *fakeWorld) ReportCheat(code runes.CheatCode)  { w.cheats = append(w.cheats, code) }
func (w *fakeWorld) Debugf(format string, args ...any) { w.debug = append(w.debug, format) }
func (w *fakeWorld) Cast(req CastRequest) bool {
	w.requests = append(w.requests, req)
	return w.castOK
}

type harness struct {
	t     *testing.T
	e     *Engine
	w     *fakeWorld
	clock time.Time
}

func newHarness(t *testing.T, book *spells.Book) *harness {
	t.Helper()
	w := &fakeWorld{castOK: true}
	e := New(book, DefaultConfig(), Collaborators{Input: w, Audio: w, Caster: w, Cheats: w, Log: w})
	return &harness{t: t, e: e, w: w, clock: time.Unix(1_000, 0)}
}

func (h *harness) draw(digits string) GestureResult {
	h.t.Helper()
	path, err := gesture.PathFromDigits(digits, gesture.Point{X: 500, Y: 400}, 120)
	if err != nil {
		h.t.Fatal(err)
	}
	res := h.e.Trace(path, h.clock, 40*time.Millisecond)
	h.clock = h.clock.Add(time.Second)
	return res
}

func TestEndToEndAamVitae(t *testing.T) {
	book := spells.NewBook(nil)
	book.Register([]runes.Rune{runes.RuneAam, runes.RuneVitae}, spells.SpellLifeDrain, "test_drain")
	h := newHarness(t, book)

	if res := h.draw("64"); res.Outcome != OutcomeRuneAppended || res.Match.Rune != runes.RuneAam {
		t.Fatalf("expected aam, got %+v", res)
	}
	if res := h.draw("698"); res.Digits != "698" || res.Match.Rune != runes.RuneVitae {
		t.Fatalf("expected vitae from 698, got %+v", res)
	}
	got := h.e.Symbols()
	if len(got) != 2 || got[0] != runes.RuneAam || got[1] != runes.RuneVitae {
		t.Fatalf("unexpected accumulator %v", got)
	}
	if len(h.w.played) != 2 {
		t.Fatalf("expected feedback sound per rune, got %v", h.w.played)
	}

	res := h.e.AnalyseSpell()
	if !res.OK || res.Spell != spells.SpellLifeDrain {
		t.Fatalf("expected dispatched cast, got %+v", res)
	}
	want := CastRequest{Spell: spells.SpellLifeDrain, Caster: PlayerID, Level: DefaultLevel, Target: NoTarget, Duration: DefaultDuration}
	if len(h.w.requests) != 1 || h.w.requests[0] != want {
		t.Fatalf("unexpected requests %+v", h.w.requests)
	}
	if len(h.e.Symbols()) != 0 {
		t.Fatalf("accumulator must be cleared after a cast")
	}
}

func TestUnregisteredSequenceFizzles(t *testing.T) {
	h := newHarness(t, spells.Default())
	h.draw("64")
	h.draw("698")

	res := h.e.AnalyseSpell()
	if res.OK || res.Spell != spells.SpellNone {
		t.Fatalf("expected failure, got %+v", res)
	}
	if h.w.fizzles != 1 || len(h.w.requests) != 0 {
		t.Fatalf("expected one fizzle and no cast, got fizzles=%d requests=%v", h.w.fizzles, h.w.requests)
	}
	if len(h.e.Symbols()) != 2 {
		t.Fatalf("accumulator must be kept outside memorize mode")
	}
}

func TestMemorizeFailureClearsAccumulator(t *testing.T) {
	h := newHarness(t, spells.Default())
	h.draw("64")
	h.draw("698")
	if !h.e.Memorize() {
		t.Fatalf("expected memorize to succeed")
	}
	h.e.AnalyseSpell()
	if len(h.e.Symbols()) != 0 || h.e.Memorizing() {
		t.Fatalf("expected accumulator and memorize flag cleared, got %v %v", h.e.Symbols(), h.e.Memorizing())
	}
	if len(h.e.Memorized()) != 2 {
		t.Fatalf("memorized runes should survive, got %v", h.e.Memorized())
	}
	if !h.e.Recall() || len(h.e.Symbols()) != 2 {
		t.Fatalf("expected recall to restore runes")
	}
	h.e.Reset()
	if len(h.e.Symbols()) != 0 || len(h.e.Memorized()) != 0 {
		t.Fatalf("reset must clear everything")
	}
}

func TestAccumulatorOverflowOverwritesLastSlot(t *testing.T) {
	h := newHarness(t, spells.Default())
	for i := 0; i < 6; i++ {
		h.draw("4")
	}
	h.draw("6")
	got := h.e.Symbols()
	if len(got) != spells.MaxSymbols {
		t.Fatalf("expected %d runes, got %v", spells.MaxSymbols, got)
	}
	if got[5] != runes.RuneAam || got[4] != runes.RuneNhi {
		t.Fatalf("expected last slot overwritten, got %v", got)
	}
}

func TestCheatGestures(t *testing.T) {
	h := newHarness(t, spells.Default())

	res := h.draw("238")
	if res.Outcome != OutcomeFailed || len(h.e.Symbols()) != 0 {
		t.Fatalf("cheat U must be discarded, got %+v", res)
	}
	if h.e.LastFailedSequence() != "238" {
		t.Fatalf("expected failed sequence 238, got %q", h.e.LastFailedSequence())
	}

	res = h.draw("626262")
	if res.Outcome != OutcomeCheat || len(h.e.Symbols()) != 0 {
		t.Fatalf("passwall must not append, got %+v", res)
	}
	if h.e.LastFailedSequence() != "238" {
		t.Fatalf("passwall must not be recorded as failed, got %q", h.e.LastFailedSequence())
	}

	res = h.draw("8")
	if res.Outcome != OutcomeRuneAppended || res.Match.Rune != runes.RuneMega {
		t.Fatalf("expected mega, got %+v", res)
	}

	want := []runes.CheatCode{runes.CheatU, runes.CheatPasswall, runes.CheatMega}
	if len(h.w.cheats) != len(want) {
		t.Fatalf("cheats=%v want %v", h.w.cheats, want)
	}
	for i := range want {
		if h.w.cheats[i] != want[i] {
			t.Fatalf("cheats=%v want %v", h.w.cheats, want)
		}
	}
}

func TestEmptyGestureFailsQuietly(t *testing.T) {
	h := newHarness(t, spells.Default())
	h.e.BeginGesture()
	h.e.AddPoint(gesture.Point{X: 10, Y: 10}, h.clock)
	res := h.e.AnalyseSymbol()
	if res.Outcome != OutcomeFailed || res.Signature != 0 || res.Digits != "" {
		t.Fatalf("expected failed empty gesture, got %+v", res)
	}
	if len(h.w.debug) == 0 {
		t.Fatalf("expected a debug trace for the bad signature")
	}
	if h.e.State() != StateIdle {
		t.Fatalf("expected idle after analysis, got %v", h.e.State())
	}
}

func TestFailedSequenceIsTruncated(t *testing.T) {
	h := newHarness(t, spells.Default())
	h.e.recordFailure(strings.Repeat("2", 300))
	if got := len(h.e.LastFailedSequence()); got != MaxFailedSequence {
		t.Fatalf("expected %d chars, got %d", MaxFailedSequence, got)
	}
}

func TestPrecastCarriesToCast(t *testing.T) {
	h := newHarness(t, spells.Default())
	h.draw("8")
	h.w.precast = true
	h.draw("698")
	if !h.e.Precast() {
		t.Fatalf("expected precast after gesture with modifier held")
	}
	h.w.precast = false

	res := h.e.AnalyseSpell()
	if !res.OK || res.Spell != spells.SpellHeal || !res.Request.Precast() {
		t.Fatalf("expected precast heal, got %+v", res)
	}
	if h.e.Precast() {
		t.Fatalf("precast flag must be consumed by the cast")
	}
}

func TestSummonShortcut(t *testing.T) {
	h := newHarness(t, spells.Default())
	for _, d := range []string{"8", "8", "8", "6", "698", "926"} {
		if res := h.draw(d); res.Outcome != OutcomeRuneAppended {
			t.Fatalf("gesture %s did not resolve: %+v", d, res)
		}
	}
	res := h.e.AnalyseSpell()
	if !res.OK || res.Spell != spells.SpellSummonCreature || res.Request.Power != 10 {
		t.Fatalf("expected forced summon at power 10, got %+v", res)
	}
	if res.Request.Level != DefaultLevel {
		t.Fatalf("shortcut level=%d want %d", res.Request.Level, DefaultLevel)
	}
	if len(h.w.requests) != 1 || h.w.requests[0].Power != 10 {
		t.Fatalf("caster got %+v", h.w.requests)
	}
}

func TestCastRejectedKeepsRunes(t *testing.T) {
	h := newHarness(t, spells.Default())
	h.w.castOK = false
	h.draw("6")
	h.draw("626")
	res := h.e.AnalyseSpell()
	if res.OK || res.Spell != spells.SpellMagicMissile {
		t.Fatalf("expected rejected magic missile, got %+v", res)
	}
	if len(h.e.Symbols()) != 2 {
		t.Fatalf("runes must be kept after a rejected cast")
	}
}

func TestAddPointThrottle(t *testing.T) {
	h := newHarness(t, spells.Default())
	h.e.BeginGesture()
	if !h.e.AddPoint(gesture.Point{X: 1, Y: 1}, h.clock) {
		t.Fatalf("first sample must be kept")
	}
	if h.e.AddPoint(gesture.Point{X: 5, Y: 5}, h.clock.Add(29*time.Millisecond)) {
		t.Fatalf("sample inside 30ms must be dropped")
	}
	if !h.e.AddPoint(gesture.Point{X: 5, Y: 5}, h.clock.Add(30*time.Millisecond)) {
		t.Fatalf("sample at 30ms must be kept")
	}
	if len(h.e.Stroke()) != 2 || h.e.State() != StateCapturing {
		t.Fatalf("unexpected stroke %v state %v", h.e.Stroke(), h.e.State())
	}
}
