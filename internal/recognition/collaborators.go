package recognition

import (
	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

// Input reports whether the precast modifier is held.
type Input interface {
	PrecastHeld() bool
}

// Audio plays feedback. Calls are fire-and-forget.
type Audio interface {
	PlayRune(r runes.Rune)
	PlayFizzle()
}

// Caster dispatches a cast request and reports whether it went through.
type Caster interface {
	Cast(req CastRequest) bool
}

// CheatSink receives cheat codes recognized from gestures.
type CheatSink interface {
	ReportCheat(code runes.CheatCode)
}

// Logger receives diagnostics.
type Logger interface {
	Debugf(format string, args ...any)
}

// CasterFunc adapts a function to Caster.
type CasterFunc func(req CastRequest) bool

func (f CasterFunc) Cast(req CastRequest) bool { return f(req) }

// Collaborators groups the engine's outside world. Nil fields are replaced
// by no-ops; a nil Caster rejects every request.
type Collaborators struct {
	Input  Input
	Audio  Audio
	Caster Caster
	Cheats CheatSink
	Log    Logger
}

type EntityID int

const (
	PlayerID EntityID = 0
	NoTarget EntityID = -1
)

type CastFlags uint8

const (
	CastPrecast CastFlags = 1 << iota
)

const (
	// DefaultLevel asks the spell system to use the caster's own level.
	DefaultLevel = -1
	// DefaultDuration asks the spell system for the spell's own duration.
	DefaultDuration = -1
)

// CastRequest is what the engine hands to the Caster.
type CastRequest struct {
	Spell    spells.SpellID
	Caster   EntityID
	Flags    CastFlags
	Level    int
	Target   EntityID
	Duration int
	// Power overrides the spell's strength when non-zero.
	Power int
}

func (r CastRequest) Precast() bool { return r.Flags&CastPrecast != 0 }

type nopInput struct{}

func (nopInput) PrecastHeld() bool { return false }

type nopAudio struct{}

func (nopAudio) PlayRune(runes.Rune) {}
func (nopAudio) PlayFizzle()         {}

type nopCheats struct{}

func (nopCheats) ReportCheat(runes.CheatCode) {}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

func withDefaults(c Collaborators) Collaborators {
	if c.Input == nil {
		c.Input = nopInput{}
	}
	if c.Audio == nil {
		c.Audio = nopAudio{}
	}
	if c.Caster == nil {
		c.Caster = CasterFunc(func(CastRequest) bool { return false })
	}
	if c.Cheats == nil {
		c.Cheats = nopCheats{}
	}
	if c.Log == nil {
		c.Log = nopLogger{}
	}
	return c
}
