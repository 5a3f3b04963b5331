package runes

// CheatCode is a diagnostic signature reported to the cheat collaborator.
// It is not a gameplay rune.
type CheatCode int

const (
	CheatNone CheatCode = iota
	CheatKaom
	CheatMega
	CheatU
	CheatW
	CheatS
	CheatP
	CheatM
	CheatA
	CheatX
	Cheat26
	CheatO
	CheatR
	CheatF
	CheatPasswall
	CheatChangeSkin
)

var cheatNames = [...]string{
	CheatNone:       "none",
	CheatKaom:       "kaom",
	CheatMega:       "mega",
	CheatU:          "u",
	CheatW:          "w",
	CheatS:          "s",
	CheatP:          "p",
	CheatM:          "m",
	CheatA:          "a",
	CheatX:          "x",
	Cheat26:         "26",
	CheatO:          "o",
	CheatR:          "r",
	CheatF:          "f",
	CheatPasswall:   "passwall",
	CheatChangeSkin: "change_skin",
}

func (c CheatCode) String() string {
	if c < CheatNone || int(c) >= len(cheatNames) {
		return "invalid"
	}
	return cheatNames[c]
}
