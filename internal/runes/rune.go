// Package runes defines the magical symbols a player can draw and the
// direction table that maps gesture signatures onto them.
package runes

import "strings"

// Rune is one recognized magical symbol. The zero value is RuneNone.
type Rune int

const (
	RuneNone Rune = iota
	RuneAam
	RuneCetrius
	RuneComunicatum
	RuneCosum
	RuneFolgora
	RuneFridd
	RuneKaom
	RuneMega
	RuneMorte
	RuneMovis
	RuneNhi
	RuneRhaa
	RuneSpacium
	RuneStregum
	RuneTaar
	RuneTempus
	RuneTera
	RuneVista
	RuneVitae
	RuneYok

	runeEnd
)

// Count is the number of slots needed to index by Rune, including RuneNone.
const Count = int(runeEnd)

var runeNames = [...]string{
	RuneNone:        "none",
	RuneAam:         "aam",
	RuneCetrius:     "cetrius",
	RuneComunicatum: "comunicatum",
	RuneCosum:       "cosum",
	RuneFolgora:     "folgora",
	RuneFridd:       "fridd",
	RuneKaom:        "kaom",
	RuneMega:        "mega",
	RuneMorte:       "morte",
	RuneMovis:       "movis",
	RuneNhi:         "nhi",
	RuneRhaa:        "rhaa",
	RuneSpacium:     "spacium",
	RuneStregum:     "stregum",
	RuneTaar:        "taar",
	RuneTempus:      "tempus",
	RuneTera:        "tera",
	RuneVista:       "vista",
	RuneVitae:       "vitae",
	RuneYok:         "yok",
}

// Valid reports whether r is a drawable rune.
func (r Rune) Valid() bool {
	return r > RuneNone && r < runeEnd
}

func (r Rune) String() string {
	if r < RuneNone || r >= runeEnd {
		return "invalid"
	}
	return runeNames[r]
}

// All returns every drawable rune in declaration order.
func All() []Rune {
	out := make([]Rune, 0, Count-1)
	for r := RuneNone + 1; r < runeEnd; r++ {
		out = append(out, r)
	}
	return out
}

// Parse maps a rune name (case-insensitive) back to its Rune.
func Parse(name string) (Rune, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r := RuneNone + 1; r < runeEnd; r++ {
		if runeNames[r] == name {
			return r, true
		}
	}
	return RuneNone, false
}

// Join renders a rune sequence as space separated names.
func Join(seq []Rune) string {
	parts := make([]string, 0, len(seq))
	for _, r := range seq {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " ")
}
