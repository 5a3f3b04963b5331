package gesture

const (
	DefaultTolerance = 0.12
	// DefaultBendAngle is about 155 degrees. Vertices bending less sharply
	// than this are treated as the line continuing.
	DefaultBendAngle = 2.7
)

// SimplifyOptions tunes Simplify.
type SimplifyOptions struct {
	// Tolerance is the fraction of the average bounding box side below which
	// a vertex is too close to the previous anchor to matter.
	Tolerance float64
	// BendAngle is the angle in radians under which a vertex counts as a turn.
	BendAngle float64
}

func DefaultSimplifyOptions() SimplifyOptions {
	return SimplifyOptions{Tolerance: DefaultTolerance, BendAngle: DefaultBendAngle}
}

// Simplify reduces raw samples to the vertices where the drawing turns.
// The first sample is always kept; the last one is kept when it lies farther
// than the tolerance from the last kept vertex.
func Simplify(raw []Point, opts SimplifyOptions) []Point {
	switch len(raw) {
	case 0:
		return nil
	case 1:
		return []Point{raw[0]}
	}

	box := Bounds(raw)
	tolerance := float64((box.Width()+box.Height())/2) * opts.Tolerance

	out := make([]Point, 0, len(raw))
	out = append(out, raw[0])
	anchor := raw[0]

	for i := 2; i < len(raw); i++ {
		this := raw[i-1]
		next := raw[i]

		back := anchor.Sub(this)
		if back.Length() <= tolerance {
			continue
		}
		if angleBetween(back, next.Sub(this)) < opts.BendAngle {
			anchor = this
			out = append(out, this)
		}
	}

	last := raw[len(raw)-1]
	if last.Sub(anchor).Length() > tolerance {
		out = append(out, last)
	}
	return out
}
