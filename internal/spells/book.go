package spells

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/appengine-ltd/runecast/internal/runes"
)

var ErrUnknownSpell = errors.New("unknown spell")

// Logger receives catalog configuration warnings.
type Logger interface {
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// node children hold arena indexes; 0 means absent since the root never is
// a child.
type node struct {
	next  [runes.Count]int32
	spell SpellID
}

// Book resolves rune sequences and names to spells. It is filled once by
// Register calls and is read-only afterwards, so one Book can back any
// number of recognition engines.
type Book struct {
	nodes []node
	names map[string]SpellID
	log   Logger
}

func NewBook(log Logger) *Book {
	if log == nil {
		log = nopLogger{}
	}
	return &Book{
		nodes: make([]node, 1, 64),
		names: make(map[string]SpellID),
		log:   log,
	}
}

// Build registers every definition in order.
func Build(defs []Definition, log Logger) *Book {
	b := NewBook(log)
	for _, def := range defs {
		b.Register(def.Runes, def.ID, def.Name)
	}
	return b
}

var defaultBook = sync.OnceValue(func() *Book {
	return Build(catalog, nil)
})

// Default returns the shared Book built from the built-in catalog.
func Default() *Book {
	return defaultBook()
}

// Register adds a spell. The sequence is read up to the first RuneNone or
// MaxSymbols runes; an empty sequence registers the name only. A duplicate
// name keeps the first registration. A duplicate rune sequence replaces the
// earlier spell. Both are logged.
func (b *Book) Register(seq []runes.Rune, id SpellID, name string) {
	name = strings.TrimSpace(name)
	if prev, ok := b.names[name]; ok {
		b.log.Warnf("duplicate spell name: %s (%v kept, %v ignored)", name, prev, id)
	} else {
		b.names[name] = id
	}

	seq = trimSequence(seq)
	if len(seq) == 0 {
		return
	}

	for _, r := range seq {
		if !r.Valid() {
			b.log.Warnf("spell %s: invalid rune %d in sequence", name, int(r))
			return
		}
	}

	cur := int32(0)
	for _, r := range seq {
		next := b.nodes[cur].next[r]
		if next == 0 {
			b.nodes = append(b.nodes, node{})
			next = int32(len(b.nodes) - 1)
			b.nodes[cur].next[r] = next
		}
		cur = next
	}

	if prev := b.nodes[cur].spell; prev != SpellNone && prev != id {
		b.log.Warnf("duplicate rune sequence %q: %v replaces %v", runes.Join(seq), id, prev)
	}
	b.nodes[cur].spell = id
}

// Lookup walks the trie along seq and returns the spell registered for that
// exact sequence, or SpellNone.
func (b *Book) Lookup(seq []runes.Rune) SpellID {
	cur := int32(0)
	for _, r := range trimSequence(seq) {
		if !r.Valid() {
			return SpellNone
		}
		next := b.nodes[cur].next[r]
		if next == 0 {
			return SpellNone
		}
		cur = next
	}
	return b.nodes[cur].spell
}

// LookupByName returns the spell registered under name, or SpellNone.
func (b *Book) LookupByName(name string) SpellID {
	id, ok := b.names[strings.TrimSpace(name)]
	if !ok {
		return SpellNone
	}
	return id
}

// Resolve is LookupByName with an error for unknown names.
func (b *Book) Resolve(name string) (SpellID, error) {
	id := b.LookupByName(name)
	if id == SpellNone {
		return SpellNone, fmt.Errorf("%w: %q", ErrUnknownSpell, name)
	}
	return id, nil
}

// Names returns every registered name, sorted.
func (b *Book) Names() []string {
	out := make([]string, 0, len(b.names))
	for name := range b.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func trimSequence(seq []runes.Rune) []runes.Rune {
	if len(seq) > MaxSymbols {
		seq = seq[:MaxSymbols]
	}
	for i, r := range seq {
		if r == runes.RuneNone {
			return seq[:i]
		}
	}
	return seq
}
