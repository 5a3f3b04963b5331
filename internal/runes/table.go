package runes

import "fmt"

// MatchKind tags the outcome of a direction table lookup.
type MatchKind int

const (
	// MatchNone means the signature is not in the table.
	MatchNone MatchKind = iota
	// MatchRune resolves to a gameplay rune. Cheat may also be set.
	MatchRune
	// MatchCheat resolves to a cheat code only; no rune is produced.
	MatchCheat
)

// Match is the tagged result of Lookup.
type Match struct {
	Kind  MatchKind
	Rune  Rune
	Cheat CheatCode
}

// Failed reports whether the gesture should be recorded as a failed
// sequence. Passwall is reported without counting as a failure.
func (m Match) Failed() bool {
	switch m.Kind {
	case MatchRune:
		return false
	case MatchCheat:
		return m.Cheat != CheatPasswall
	default:
		return true
	}
}

type tableEntry struct {
	rune       Rune
	cheat      CheatCode
	signatures []int64
}

// Aliases tolerate drawing variance; every entry lists all the signatures a
// sloppy hand tends to produce for the same symbol.
var tableEntries = []tableEntry{
	{rune: RuneCosum, signatures: []int64{62148, 632148, 62498, 62748, 6248}},
	{rune: RuneComunicatum, signatures: []int64{632426, 627426, 634236, 624326, 62426}},
	{rune: RuneFolgora, signatures: []int64{9823, 9232, 983, 963, 923, 932, 93}},
	{rune: RuneSpacium, signatures: []int64{42368, 42678, 42698, 4268}},
	{rune: RuneTera, signatures: []int64{9826, 92126, 9264, 9296, 926}},
	{rune: RuneCetrius, signatures: []int64{286, 3286, 23836, 38636, 2986, 2386, 386}},
	{rune: RuneRhaa, signatures: []int64{28, 2}},
	{rune: RuneFridd, signatures: []int64{98362, 8362, 8632, 8962, 862}},
	{rune: RuneKaom, cheat: CheatKaom, signatures: []int64{41236, 23, 236, 2369, 136, 12369, 1236}},
	{rune: RuneStregum, signatures: []int64{82328, 8328, 2328, 8938, 8238, 838}},
	{rune: RuneMorte, signatures: []int64{628, 621, 62}},
	{rune: RuneTempus, signatures: []int64{962686, 862686, 8626862}},
	{rune: RuneMovis, signatures: []int64{6316, 61236, 6146, 61216, 6216, 6416, 62126, 61264, 6126, 6136, 616}},
	{rune: RuneNhi, signatures: []int64{46, 4}},
	{rune: RuneAam, signatures: []int64{64, 6}},
	{rune: RuneYok, signatures: []int64{412369, 2687, 2698, 2638, 26386, 2368, 2689, 268}},
	{rune: RuneTaar, signatures: []int64{6236, 6264, 626}},
	{rune: RuneMega, cheat: CheatMega, signatures: []int64{82, 8}},
	{rune: RuneVista, signatures: []int64{3614, 361, 341, 3212, 3214, 312, 314, 321, 31}},
	{rune: RuneVitae, signatures: []int64{698, 68}},

	{cheat: CheatU, signatures: []int64{238, 2398, 23898, 236987, 23698}},
	{cheat: CheatW, signatures: []int64{
		2382398, 2829, 23982398, 39892398, 2398938, 28239898, 238982398, 238923898,
		28982398, 3923989, 292398, 398329, 38923898, 2398289, 289823898, 2989238,
		29829, 2393239, 38239, 239829, 2898239, 28982898, 389389, 3892389,
		289289, 289239, 239289, 2989298, 2392398, 238929, 28923898, 2929,
		2398298, 239823898, 28238, 2892398, 28298, 298289, 38929, 289298989,
		23892398, 238239, 29298, 2329298, 232389829, 2389829, 239239, 282398,
		2389239, 2929898, 3292398, 23923298, 23898239, 3232929, 2982398, 238298,
		3939,
	}},
	{cheat: CheatS, signatures: []int64{161, 1621, 1261}},
	{cheat: CheatP, signatures: []int64{83614, 8361, 8341, 83212, 83214, 8312, 8314, 8321, 831, 82341, 834, 823, 8234, 8231}},
	{cheat: CheatM, signatures: []int64{83692, 823982, 83982, 82369892, 82392, 83892, 823282, 8392}},
	{cheat: CheatA, signatures: []int64{98324, 92324, 89324, 9324, 9892324, 9234, 934}},
	{cheat: CheatX, signatures: []int64{3249, 2349, 323489, 23249, 3489, 32498, 349}},
	{cheat: Cheat26, signatures: []int64{26}},
	{cheat: CheatO, signatures: []int64{9232187, 93187, 9234187, 831878, 923187, 932187, 93217, 9317}},
	{cheat: CheatR, signatures: []int64{82313, 8343, 82343, 83413, 8313}},
	{cheat: CheatF, signatures: []int64{86}},
	{cheat: CheatPasswall, signatures: []int64{626262}},
	{cheat: CheatChangeSkin, signatures: []int64{828282}},
}

var directionTable = mustCompileTable(tableEntries)

func mustCompileTable(entries []tableEntry) map[int64]Match {
	table, err := compileTable(entries)
	if err != nil {
		panic(err)
	}
	return table
}

func compileTable(entries []tableEntry) (map[int64]Match, error) {
	table := make(map[int64]Match)
	for _, e := range entries {
		m := Match{Kind: MatchCheat, Rune: e.rune, Cheat: e.cheat}
		if e.rune.Valid() {
			m.Kind = MatchRune
		}
		for _, sig := range e.signatures {
			if prev, ok := table[sig]; ok {
				return nil, fmt.Errorf("signature %d listed for both %v/%v and %v/%v", sig, prev.Rune, prev.Cheat, e.rune, e.cheat)
			}
			table[sig] = m
		}
	}
	return table, nil
}

// Lookup resolves a direction signature. Unknown signatures, including the
// 0 produced by an empty or unparsable digit string, yield MatchNone.
func Lookup(signature int64) Match {
	m, ok := directionTable[signature]
	if !ok {
		return Match{Kind: MatchNone}
	}
	return m
}

// Signatures returns every signature aliased to r.
func Signatures(r Rune) []int64 {
	for _, e := range tableEntries {
		if e.rune == r && r.Valid() {
			return append([]int64(nil), e.signatures...)
		}
	}
	return nil
}
