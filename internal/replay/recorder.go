package replay

import (
	"time"

	"github.com/appengine-ltd/runecast/internal/gesture"
)

// Recorder captures live input into a Recording.
type Recorder struct {
	start   time.Time
	rec     Recording
	current *Step
}

func NewRecorder(name string, start time.Time) *Recorder {
	return &Recorder{
		start: start,
		rec:   Recording{FormatVersion: FormatVersion, Name: name, RecordedAt: start.UTC()},
	}
}

func (r *Recorder) offset(at time.Time) int64 {
	return at.Sub(r.start).Milliseconds()
}

func (r *Recorder) BeginGesture(at time.Time) {
	r.current = &Step{Kind: StepGesture, AtMS: r.offset(at)}
}

// AddSample appends a sample to the open gesture. Samples outside a gesture
// are dropped.
func (r *Recorder) AddSample(p gesture.Point, at time.Time) {
	if r.current == nil {
		return
	}
	r.current.Samples = append(r.current.Samples, Sample{X: p.X, Y: p.Y, AtMS: r.offset(at)})
}

// EndGesture closes the open gesture, noting whether the precast modifier
// was held when it ended.
func (r *Recorder) EndGesture(precast bool) {
	if r.current == nil {
		return
	}
	r.current.Precast = precast
	r.rec.Steps = append(r.rec.Steps, *r.current)
	r.current = nil
}

// Action records a non-gesture step such as a cast or a reset.
func (r *Recorder) Action(kind StepKind, at time.Time, precast bool) {
	r.rec.Steps = append(r.rec.Steps, Step{Kind: kind, AtMS: r.offset(at), Precast: precast})
}

func (r *Recorder) Len() int { return len(r.rec.Steps) }

// Recording returns a copy of what has been captured so far.
func (r *Recorder) Recording() Recording {
	out := r.rec
	out.Steps = append([]Step(nil), r.rec.Steps...)
	return out
}

// GestureFromDigits synthesises a gesture step tracing a keypad digit
// string, with samples spacingMS apart starting at atMS.
func GestureFromDigits(digits string, atMS, spacingMS int64) (Step, error) {
	path, err := gesture.PathFromDigits(digits, gesture.Point{X: 400, Y: 300}, 120)
	if err != nil {
		return Step{}, err
	}
	step := Step{Kind: StepGesture, AtMS: atMS}
	t := atMS
	for _, p := range path {
		step.Samples = append(step.Samples, Sample{X: p.X, Y: p.Y, AtMS: t})
		t += spacingMS
	}
	return step, nil
}
