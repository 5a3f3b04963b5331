package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFilteringAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn).WithPrefix("spells")
	l.Debugf("hidden %d", 1)
	l.Warnf("duplicate spell name: %s", "heal")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line must be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN [spells] duplicate spell name: heal") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{"debug": LevelDebug, "": LevelInfo, "WARN": LevelWarn, "error": LevelError}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q)=%v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
