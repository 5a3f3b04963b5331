// Package recognition turns pointer gestures into runes and rune sequences
// into spell casts. An Engine owns all per-player state; the spell Book it
// reads from is shared and immutable.
package recognition

import (
	"time"

	"github.com/appengine-ltd/runecast/internal/gesture"
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

// MaxFailedSequence bounds the stored failed digit string.
const MaxFailedSequence = 127

// shortcutPower is the power the summon shortcut forces on its creature.
const shortcutPower = 10

var summonShortcut = [spells.MaxSymbols]runes.Rune{
	runes.RuneMega, runes.RuneMega, runes.RuneMega,
	runes.RuneAam, runes.RuneVitae, runes.RuneTera,
}

type State int

const (
	StateIdle State = iota
	StateCapturing
)

func (s State) String() string {
	if s == StateCapturing {
		return "capturing"
	}
	return "idle"
}

// Outcome says what a gesture contributed.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeRuneAppended
	// OutcomeCheat is a cheat gesture that is neither a rune nor a failure.
	OutcomeCheat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRuneAppended:
		return "rune"
	case OutcomeCheat:
		return "cheat"
	default:
		return "failed"
	}
}

// GestureResult describes one analysed gesture.
type GestureResult struct {
	Samples   int
	Path      []gesture.Point
	Digits    string
	Signature int64
	Match     runes.Match
	Outcome   Outcome
}

// CastResult describes one AnalyseSpell call.
type CastResult struct {
	Runes   []runes.Rune
	Spell   spells.SpellID
	Request CastRequest
	OK      bool
}

type Config struct {
	MaxPoints      int
	SampleInterval time.Duration
	Simplify       gesture.SimplifyOptions
}

func DefaultConfig() Config {
	return Config{
		MaxPoints:      gesture.MaxPoints,
		SampleInterval: gesture.DefaultSampleInterval,
		Simplify:       gesture.DefaultSimplifyOptions(),
	}
}

type Engine struct {
	cfg  Config
	book *spells.Book
	c    Collaborators

	stroke *gesture.Stroke
	state  State

	symbols    []runes.Rune
	memorized  []runes.Rune
	memorizing bool
	precast    bool
	lastFailed string
}

// New creates an engine reading spells from book.
func New(book *spells.Book, cfg Config, c Collaborators) *Engine {
	if book == nil {
		book = spells.Default()
	}
	return &Engine{
		cfg:     cfg,
		book:    book,
		c:       withDefaults(c),
		stroke:  gesture.NewStroke(cfg.MaxPoints, cfg.SampleInterval),
		symbols: make([]runes.Rune, 0, spells.MaxSymbols),
	}
}

func (e *Engine) State() State { return e.state }

// BeginGesture drops any collected samples and starts capturing.
func (e *Engine) BeginGesture() {
	e.stroke.Reset()
	e.state = StateCapturing
}

// AddPoint records a pointer sample taken at the given time. It reports
// whether the sample was kept.
func (e *Engine) AddPoint(p gesture.Point, at time.Time) bool {
	e.state = StateCapturing
	return e.stroke.Add(p, at)
}

// Stroke returns the samples of the gesture in progress.
func (e *Engine) Stroke() []gesture.Point {
	return e.stroke.Points()
}

// AnalyseSymbol classifies the captured gesture, appends its rune when it
// resolves to one and records the failure otherwise.
func (e *Engine) AnalyseSymbol() GestureResult {
	raw := e.stroke.Points()
	path := gesture.Simplify(raw, e.cfg.Simplify)
	digits := gesture.Classify(path)
	sig, err := gesture.ParseSignature(digits)
	if err != nil {
		e.c.Log.Debugf("bad spell moves: %v", err)
	}

	m := runes.Lookup(sig)
	res := GestureResult{
		Samples:   len(raw),
		Path:      path,
		Digits:    digits,
		Signature: sig,
		Match:     m,
	}

	if m.Cheat != runes.CheatNone {
		e.c.Cheats.ReportCheat(m.Cheat)
	}
	switch {
	case m.Kind == runes.MatchRune:
		e.appendRune(m.Rune)
		res.Outcome = OutcomeRuneAppended
	case m.Failed():
		e.recordFailure(digits)
		res.Outcome = OutcomeFailed
	default:
		res.Outcome = OutcomeCheat
	}

	e.precast = e.c.Input.PrecastHeld()
	e.stroke.Reset()
	e.state = StateIdle
	return res
}

// Trace replays a whole gesture: samples are spaced apart in time starting
// at start, then analysed.
func (e *Engine) Trace(points []gesture.Point, start time.Time, spacing time.Duration) GestureResult {
	e.BeginGesture()
	at := start
	for _, p := range points {
		e.AddPoint(p, at)
		at = at.Add(spacing)
	}
	return e.AnalyseSymbol()
}

func (e *Engine) appendRune(r runes.Rune) {
	if len(e.symbols) < spells.MaxSymbols {
		e.symbols = append(e.symbols, r)
	} else {
		e.symbols[len(e.symbols)-1] = r
	}
	e.c.Audio.PlayRune(r)
}

func (e *Engine) recordFailure(digits string) {
	if len(digits) > MaxFailedSequence {
		digits = digits[:MaxFailedSequence]
	}
	e.lastFailed = digits
	e.c.Log.Debugf("unknown symbol - %s", digits)
}

// AnalyseSpell resolves the accumulated runes and dispatches the cast.
func (e *Engine) AnalyseSpell() CastResult {
	var flags CastFlags
	if e.c.Input.PrecastHeld() || e.precast {
		flags |= CastPrecast
	}
	e.precast = false

	res := CastResult{Runes: e.Symbols()}
	power := 0
	if e.isSummonShortcut() {
		res.Spell = spells.SpellSummonCreature
		power = shortcutPower
	} else {
		res.Spell = e.book.Lookup(e.symbols)
	}

	if res.Spell == spells.SpellNone {
		e.c.Audio.PlayFizzle()
		if e.memorizing {
			e.symbols = e.symbols[:0]
			e.memorizing = false
		}
		return res
	}

	res.Request = CastRequest{
		Spell:    res.Spell,
		Caster:   PlayerID,
		Flags:    flags,
		Level:    DefaultLevel,
		Target:   NoTarget,
		Duration: DefaultDuration,
		Power:    power,
	}
	res.OK = e.c.Caster.Cast(res.Request)
	if res.OK {
		e.symbols = e.symbols[:0]
	}
	return res
}

func (e *Engine) isSummonShortcut() bool {
	if len(e.symbols) != len(summonShortcut) {
		return false
	}
	for i, r := range summonShortcut {
		if e.symbols[i] != r {
			return false
		}
	}
	return true
}

// Symbols returns the runes accumulated so far.
func (e *Engine) Symbols() []runes.Rune {
	return append([]runes.Rune(nil), e.symbols...)
}

// Reset clears the accumulated and memorized runes.
func (e *Engine) Reset() {
	e.symbols = e.symbols[:0]
	e.memorized = nil
	e.memorizing = false
}

// Memorize stores the current runes for a later Recall and enters memorize
// mode. It reports false when there is nothing to memorize.
func (e *Engine) Memorize() bool {
	if len(e.symbols) == 0 {
		return false
	}
	e.memorized = e.Symbols()
	e.memorizing = true
	return true
}

// Recall replaces the accumulated runes with the memorized ones.
func (e *Engine) Recall() bool {
	if len(e.memorized) == 0 {
		return false
	}
	e.symbols = append(e.symbols[:0], e.memorized...)
	e.memorizing = true
	return true
}

func (e *Engine) Memorized() []runes.Rune {
	return append([]runes.Rune(nil), e.memorized...)
}

func (e *Engine) Memorizing() bool { return e.memorizing }

// Precast reports whether the last gesture ended with the modifier held.
func (e *Engine) Precast() bool { return e.precast }

// LastFailedSequence is the digit string of the last unresolved gesture.
func (e *Engine) LastFailedSequence() string { return e.lastFailed }
