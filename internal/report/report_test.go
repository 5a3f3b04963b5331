package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
	"github.com/appengine-ltd/runecast/internal/store"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	lines := formatTable([]string{"A", "NUM"}, [][]string{{"long", "1"}, {"x", "123"}}, map[int]bool{1: true})
	want := []string{
		"A     NUM",
		"long    1",
		"x     123",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines", len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteCatalogClipsToWidth(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCatalog(&buf, spells.Catalog(), Options{Width: 40}); err != nil {
		t.Fatalf("WriteCatalog: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Spells (") {
		t.Fatalf("missing title: %q", out[:20])
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if w := len([]rune(line)); w > 40 {
			t.Fatalf("line wider than 40: %q", line)
		}
	}
}

func TestDrawHintPicksShortest(t *testing.T) {
	got := drawHint([]runes.Rune{runes.RuneMega, runes.RuneVitae})
	if got != "8 68" {
		t.Fatalf("drawHint=%q", got)
	}
}

func TestWriteSpellNameOnly(t *testing.T) {
	var buf bytes.Buffer
	def := spells.Definition{ID: spells.SpellFakeSummon, Name: "fake_summon"}
	if err := WriteSpell(&buf, def, Options{Width: 80}); err != nil {
		t.Fatalf("WriteSpell: %v", err)
	}
	if !strings.Contains(buf.String(), "name only") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteStats(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	st := Stats{
		Summary: store.Summary{Sessions: 2, Gestures: 10, Failed: 4, Casts: 4, Successful: 3, LastActivity: now.Add(-2 * time.Hour)},
		Runes:   []store.RuneCount{{Rune: "aam", Count: 6}},
		Failed:  []store.FailedGesture{{Digits: "", Count: 4, LastSeen: now.Add(-3 * time.Hour)}},
		Spells:  []store.SpellCount{{Spell: "heal", Casts: 4, OK: 3}},
	}
	var buf bytes.Buffer
	if err := WriteStats(&buf, st, now, Options{Width: 100}); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"60% recognised", "75% successful", "2 hours ago", "(empty)", "heal"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
