package replay

import (
	"context"
	"time"

	"github.com/appengine-ltd/runecast/internal/recognition"
	"github.com/appengine-ltd/runecast/internal/spells"
)

// StepResult pairs a step with what the engine made of it.
type StepResult struct {
	Index   int
	Step    Step
	Gesture *recognition.GestureResult
	Cast    *recognition.CastResult
	OK      bool
}

// Player drives an engine from a recording. It stands in for the live
// input device, so the precast modifier follows the recorded flags.
type Player struct {
	engine *recognition.Engine
	held   bool
}

func (p *Player) PrecastHeld() bool { return p.held }

// NewPlayer builds an engine whose input is the recording.
func NewPlayer(book *spells.Book, cfg recognition.Config, c recognition.Collaborators) *Player {
	p := &Player{}
	c.Input = p
	p.engine = recognition.New(book, cfg, c)
	return p
}

func (p *Player) Engine() *recognition.Engine { return p.engine }

// Run plays every step, anchoring recorded offsets at start. The context is
// checked between steps.
func (p *Player) Run(ctx context.Context, rec Recording, start time.Time) ([]StepResult, error) {
	results := make([]StepResult, 0, len(rec.Steps))
	at := func(ms int64) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	for i, step := range rec.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := StepResult{Index: i, Step: step}
		p.held = step.Precast

		switch step.Kind {
		case StepGesture:
			p.engine.BeginGesture()
			for _, s := range step.Samples {
				p.engine.AddPoint(s.Point(), at(s.AtMS))
			}
			g := p.engine.AnalyseSymbol()
			res.Gesture = &g
			res.OK = g.Outcome != recognition.OutcomeFailed
		case StepCast:
			c := p.engine.AnalyseSpell()
			res.Cast = &c
			res.OK = c.OK
		case StepMemorize:
			res.OK = p.engine.Memorize()
		case StepRecall:
			res.OK = p.engine.Recall()
		case StepReset:
			p.engine.Reset()
			res.OK = true
		}
		p.held = false
		results = append(results, res)
	}
	return results, nil
}
