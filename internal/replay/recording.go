// Package replay records pointer sessions to JSON and plays them back
// through a recognition engine.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/appengine-ltd/runecast/internal/gesture"
)

const FormatVersion = 1

var ErrUnsupportedFormat = errors.New("unsupported recording format")

type StepKind string

const (
	StepGesture  StepKind = "gesture"
	StepCast     StepKind = "cast"
	StepMemorize StepKind = "memorize"
	StepRecall   StepKind = "recall"
	StepReset    StepKind = "reset"
)

// Sample is a pointer position taken AtMS milliseconds into the recording.
type Sample struct {
	X    int   `json:"x"`
	Y    int   `json:"y"`
	AtMS int64 `json:"at_ms"`
}

func (s Sample) Point() gesture.Point { return gesture.Point{X: s.X, Y: s.Y} }

type Step struct {
	Kind    StepKind `json:"kind"`
	AtMS    int64    `json:"at_ms"`
	Samples []Sample `json:"samples,omitempty"`
	Precast bool     `json:"precast,omitempty"`
}

type Recording struct {
	FormatVersion int       `json:"format_version"`
	Name          string    `json:"name,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
	Steps         []Step    `json:"steps"`
}

// Load reads a recording. Files from a newer format are rejected with
// ErrUnsupportedFormat.
func Load(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, err
	}
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("decode recording %s: %w", filepath.Base(path), err)
	}
	if rec.FormatVersion != FormatVersion {
		return Recording{}, fmt.Errorf("%w: version %d", ErrUnsupportedFormat, rec.FormatVersion)
	}
	if err := rec.Validate(); err != nil {
		return Recording{}, err
	}
	return rec, nil
}

func Save(path string, rec Recording) error {
	rec.FormatVersion = FormatVersion
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks step kinds and that time never runs backwards.
func (r Recording) Validate() error {
	var last int64
	for i, step := range r.Steps {
		switch step.Kind {
		case StepGesture, StepCast, StepMemorize, StepRecall, StepReset:
		default:
			return fmt.Errorf("step %d: unknown kind %q", i, step.Kind)
		}
		if step.AtMS < last {
			return fmt.Errorf("step %d: time goes backwards", i)
		}
		last = step.AtMS
		for _, s := range step.Samples {
			if s.AtMS < last {
				return fmt.Errorf("step %d: sample time goes backwards", i)
			}
			last = s.AtMS
		}
	}
	return nil
}
