package gesture

import "math"

// Point is a screen-space sample. Y grows downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Length() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

func (r Rect) Width() int  { return r.MaxX - r.MinX }
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Bounds returns the bounding box of points. The zero Rect is returned for
// an empty slice.
func Bounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r
}

// angleBetween returns the unsigned angle in radians between u and v.
// A zero-length vector counts as a straight continuation.
func angleBetween(u, v Point) float64 {
	lu, lv := u.Length(), v.Length()
	if lu == 0 || lv == 0 {
		return math.Pi
	}
	cos := (float64(u.X)*float64(v.X) + float64(u.Y)*float64(v.Y)) / (lu * lv)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}
