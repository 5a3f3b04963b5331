package runes

import "testing"

func TestCosumAliasesResolveIdentically(t *testing.T) {
	for _, sig := range []int64{62148, 632148, 62498, 62748, 6248} {
		m := Lookup(sig)
		if m.Kind != MatchRune || m.Rune != RuneCosum {
			t.Fatalf("Lookup(%d)=%+v want cosum", sig, m)
		}
	}
}

func TestLookupTable(t *testing.T) {
	tests := []struct {
		sig   int64
		kind  MatchKind
		rune  Rune
		cheat CheatCode
		fail  bool
	}{
		{sig: 64, kind: MatchRune, rune: RuneAam},
		{sig: 6, kind: MatchRune, rune: RuneAam},
		{sig: 698, kind: MatchRune, rune: RuneVitae},
		{sig: 8, kind: MatchRune, rune: RuneMega, cheat: CheatMega},
		{sig: 1236, kind: MatchRune, rune: RuneKaom, cheat: CheatKaom},
		{sig: 238, kind: MatchCheat, cheat: CheatU, fail: true},
		{sig: 3939, kind: MatchCheat, cheat: CheatW, fail: true},
		{sig: 26, kind: MatchCheat, cheat: Cheat26, fail: true},
		{sig: 626262, kind: MatchCheat, cheat: CheatPasswall},
		{sig: 828282, kind: MatchCheat, cheat: CheatChangeSkin, fail: true},
		{sig: 0, kind: MatchNone, fail: true},
		{sig: 55555, kind: MatchNone, fail: true},
	}
	for _, tc := range tests {
		m := Lookup(tc.sig)
		if m.Kind != tc.kind || m.Rune != tc.rune || m.Cheat != tc.cheat {
			t.Fatalf("Lookup(%d)=%+v want kind=%d rune=%v cheat=%v", tc.sig, m, tc.kind, tc.rune, tc.cheat)
		}
		if m.Failed() != tc.fail {
			t.Fatalf("Lookup(%d).Failed()=%v want %v", tc.sig, m.Failed(), tc.fail)
		}
	}
}

func TestEveryRuneHasSignatures(t *testing.T) {
	for _, r := range All() {
		sigs := Signatures(r)
		if len(sigs) == 0 {
			t.Fatalf("rune %v has no signatures", r)
		}
		for _, sig := range sigs {
			if got := Lookup(sig); got.Rune != r {
				t.Fatalf("signature %d for %v resolved to %+v", sig, r, got)
			}
		}
	}
}

func TestCompileTableRejectsDuplicateSignature(t *testing.T) {
	_, err := compileTable([]tableEntry{
		{rune: RuneAam, signatures: []int64{6}},
		{cheat: CheatF, signatures: []int64{6}},
	})
	if err == nil {
		t.Fatalf("expected duplicate signature error")
	}
}

func TestParseAndString(t *testing.T) {
	for _, r := range All() {
		got, ok := Parse(r.String())
		if !ok || got != r {
			t.Fatalf("Parse(%q)=%v,%v", r.String(), got, ok)
		}
	}
	if _, ok := Parse("none"); ok {
		t.Fatalf("none must not parse as a drawable rune")
	}
	if got := Join([]Rune{RuneMega, RuneVitae}); got != "mega vitae" {
		t.Fatalf("Join=%q", got)
	}
}
