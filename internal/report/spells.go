package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/appengine-ltd/runecast/internal/runes"
	"github.com/appengine-ltd/runecast/internal/spells"
)

// WriteCatalog lists every spell with its runes and the simplest way to
// draw each of them.
func WriteCatalog(w io.Writer, defs []spells.Definition, opts Options) error {
	rows := make([][]string, 0, len(defs))
	for _, def := range defs {
		level := "?"
		if def.Level > 0 {
			level = strconv.Itoa(def.Level)
		}
		runeNames := runes.Join(def.Runes)
		if len(def.Runes) == 0 {
			runeNames = "-"
		}
		rows = append(rows, []string{
			spells.DisplayName(def.Name),
			level,
			runeNames,
			drawHint(def.Runes),
		})
	}
	return writeTable(w, opts, fmt.Sprintf("Spells (%d)", len(defs)),
		[]string{"SPELL", "LVL", "RUNES", "DRAW"}, rows, map[int]bool{1: true})
}

// WriteSpell describes one spell with every accepted gesture per rune.
func WriteSpell(w io.Writer, def spells.Definition, opts Options) error {
	if _, err := fmt.Fprintf(w, "%s\n", heading(spells.DisplayName(def.Name), opts)); err != nil {
		return err
	}
	if len(def.Runes) == 0 {
		_, err := io.WriteString(w, "no rune sequence, cast by name only\n")
		return err
	}
	rows := make([][]string, 0, len(def.Runes))
	for i, r := range def.Runes {
		sigs := runes.Signatures(r)
		parts := make([]string, len(sigs))
		for j, sig := range sigs {
			parts[j] = strconv.FormatInt(sig, 10)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), r.String(), strings.Join(parts, " ")})
	}
	return writeTable(w, opts, "", []string{"#", "RUNE", "GESTURES"}, rows, map[int]bool{0: true})
}

// drawHint picks the shortest signature for each rune.
func drawHint(seq []runes.Rune) string {
	if len(seq) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(seq))
	for _, r := range seq {
		best := ""
		for _, sig := range runes.Signatures(r) {
			s := strconv.FormatInt(sig, 10)
			if best == "" || len(s) < len(best) {
				best = s
			}
		}
		parts = append(parts, best)
	}
	return strings.Join(parts, " ")
}
