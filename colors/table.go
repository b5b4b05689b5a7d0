package colors

import (
	"errors"
	"fmt"
	"iter"
)

var ErrEmptyTable = errors.New("color table is empty")

// Entry is one named color spec.
type Entry struct {
	Name string
	Spec string
}

// Table maps color names to their specs. Iteration order is the order the
// entries were given in. A Table is never modified after construction.
type Table struct {
	entries []Entry
	byName  map[string]int
}

// NewTable builds a table, rejecting duplicate names.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate color name %q", e.Name)
		}
		t.byName[e.Name] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the spec stored under name.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	i, ok := t.byName[name]
	if !ok {
		return "", false
	}
	return t.entries[i].Spec, true
}

// At returns the entry at index i in stored order.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// Names returns the color names in stored order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.Len())
	for name := range t.All() {
		names = append(names, name)
	}
	return names
}

// All iterates name/spec pairs in stored order.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e.Name, e.Spec) {
				return
			}
		}
	}
}

// Rand is the randomness PickRandom consumes. *math/rand/v2.Rand implements it.
type Rand interface {
	IntN(n int) int
}

// PickRandom draws one index uniformly from [0, t.Len()) and returns the
// entry at that position. The index is only meaningful because t cannot
// change between the draw and the lookup.
func PickRandom(t *Table, rng Rand) (name, spec string, err error) {
	if t.Len() == 0 {
		return "", "", ErrEmptyTable
	}
	e := t.At(rng.IntN(t.Len()))
	return e.Name, e.Spec, nil
}
