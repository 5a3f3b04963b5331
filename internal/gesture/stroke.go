package gesture

import "time"

const (
	// MaxPoints bounds the samples kept for one gesture.
	MaxPoints = 200
	// DefaultSampleInterval is the minimum spacing between stored samples.
	DefaultSampleInterval = 30 * time.Millisecond
)

// Stroke collects the samples of one continuous gesture. Once full, new
// samples overwrite the last slot.
type Stroke struct {
	points   []Point
	capacity int
	interval time.Duration
	lastAt   time.Time
}

func NewStroke(capacity int, interval time.Duration) *Stroke {
	if capacity < 1 {
		capacity = MaxPoints
	}
	if interval < 0 {
		interval = 0
	}
	return &Stroke{
		points:   make([]Point, 0, capacity),
		capacity: capacity,
		interval: interval,
	}
}

// Reset drops the collected samples. The sample-rate clock is kept so a new
// gesture cannot sneak in a sample faster than the interval.
func (s *Stroke) Reset() {
	s.points = s.points[:0]
}

// Add stores p if at least the sample interval elapsed since the previous
// stored sample and p differs from it. It reports whether p was stored.
func (s *Stroke) Add(p Point, at time.Time) bool {
	if !s.lastAt.IsZero() {
		elapsed := at.Sub(s.lastAt)
		if elapsed >= 0 && elapsed < s.interval {
			return false
		}
	}
	if n := len(s.points); n > 0 && s.points[n-1] == p {
		return false
	}
	if len(s.points) < s.capacity {
		s.points = append(s.points, p)
	} else {
		s.points[len(s.points)-1] = p
	}
	s.lastAt = at
	return true
}

func (s *Stroke) Len() int { return len(s.points) }

// Points returns a copy of the collected samples.
func (s *Stroke) Points() []Point {
	return append([]Point(nil), s.points...)
}
