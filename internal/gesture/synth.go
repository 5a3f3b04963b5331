package gesture

import "fmt"

var digitSteps = map[rune]Point{
	'1': {X: -1, Y: 1},
	'2': {X: 0, Y: 1},
	'3': {X: 1, Y: 1},
	'4': {X: -1, Y: 0},
	'6': {X: 1, Y: 0},
	'7': {X: -1, Y: -1},
	'8': {X: 0, Y: -1},
	'9': {X: 1, Y: -1},
}

// PathFromDigits draws a polyline that moves step pixels per digit starting
// at origin. It is the inverse of Classify for keyboard-driven input and
// tests.
func PathFromDigits(digits string, origin Point, step int) ([]Point, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}
	path := make([]Point, 0, len(digits)+1)
	path = append(path, origin)
	cur := origin
	for _, r := range digits {
		d, ok := digitSteps[r]
		if !ok {
			return nil, fmt.Errorf("invalid direction digit %q", r)
		}
		cur = cur.Add(Point{X: d.X * step, Y: d.Y * step})
		path = append(path, cur)
	}
	return path, nil
}
