package gesture

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Direction digits follow the numeric keypad layout; 5 is never produced.
const (
	DirDownLeft  byte = '1'
	DirDown      byte = '2'
	DirDownRight byte = '3'
	DirLeft      byte = '4'
	DirRight     byte = '6'
	DirUpLeft    byte = '7'
	DirUp        byte = '8'
	DirUpRight   byte = '9'
)

const (
	diagonalMinRatio = 0.4
	diagonalMaxRatio = 2.5
)

var ErrEmptySignature = errors.New("empty signature")

// Classify encodes a simplified path as direction digits in drawing order.
// A digit equal to the previous one is dropped.
func Classify(path []Point) string {
	var b strings.Builder
	var last byte
	for i := 1; i < len(path); i++ {
		dir := direction(path[i-1].Sub(path[i]))
		if dir == last {
			continue
		}
		b.WriteByte(dir)
		last = dir
	}
	return b.String()
}

// direction classifies d = previous - current.
func direction(d Point) byte {
	a := math.Abs(float64(d.X))
	b := math.Abs(float64(d.Y))

	if b != 0 && a/b > diagonalMinRatio && a/b < diagonalMaxRatio {
		switch {
		case d.X < 0 && d.Y < 0:
			return DirDownRight
		case d.X > 0 && d.Y < 0:
			return DirDownLeft
		case d.X < 0 && d.Y > 0:
			return DirUpRight
		default:
			return DirUpLeft
		}
	}
	if a > b {
		if d.X < 0 {
			return DirRight
		}
		return DirLeft
	}
	if d.Y < 0 {
		return DirDown
	}
	return DirUp
}

// ParseSignature reads a digit string as a base-10 integer. Empty or
// unparsable strings return 0 together with an error.
func ParseSignature(digits string) (int64, error) {
	if digits == "" {
		return 0, ErrEmptySignature
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse signature %q: %w", digits, err)
	}
	return v, nil
}
