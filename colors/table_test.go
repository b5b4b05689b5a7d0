package colors_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/platformer/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same index.
type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) }

func newTable(t *testing.T, entries ...colors.Entry) *colors.Table {
	t.Helper()
	table, err := colors.NewTable(entries...)
	require.NoError(t, err)
	return table
}

func TestTable(t *testing.T) {
	table := newTable(t,
		colors.Entry{Name: "Red", Spec: "(1,0,0)"},
		colors.Entry{Name: "Blue", Spec: "(0,0,1)"},
	)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"Red", "Blue"}, table.Names())
	assert.Equal(t, colors.Entry{Name: "Blue", Spec: "(0,0,1)"}, table.At(1))

	spec, ok := table.Lookup("Red")
	assert.True(t, ok)
	assert.Equal(t, "(1,0,0)", spec)

	_, ok = table.Lookup("Green")
	assert.False(t, ok)
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	_, err := colors.NewTable(
		colors.Entry{Name: "Red", Spec: "(1,0,0)"},
		colors.Entry{Name: "Red", Spec: "(0.9,0,0)"},
	)
	assert.ErrorContains(t, err, `"Red"`)
}

func TestNilTable(t *testing.T) {
	var table *colors.Table
	assert.Equal(t, 0, table.Len())
	_, ok := table.Lookup("Red")
	assert.False(t, ok)
	assert.Empty(t, table.Names())
}

func TestPickRandomUsesStoredOrder(t *testing.T) {
	table := newTable(t,
		colors.Entry{Name: "Red", Spec: "(1,0,0)"},
		colors.Entry{Name: "Blue", Spec: "(0,0,1)"},
		colors.Entry{Name: "Green", Spec: "(0,1,0)"},
	)

	for i, want := range []string{"Red", "Blue", "Green"} {
		name, _, err := colors.PickRandom(table, fixedRand(i))
		require.NoError(t, err)
		assert.Equal(t, want, name)
	}
}

func TestPickRandomEmpty(t *testing.T) {
	empty := newTable(t)

	_, _, err := colors.PickRandom(empty, fixedRand(0))
	assert.ErrorIs(t, err, colors.ErrEmptyTable)

	_, _, err = colors.PickRandom(nil, fixedRand(0))
	assert.ErrorIs(t, err, colors.ErrEmptyTable)
}

func TestPickRandomIsUniform(t *testing.T) {
	names := []string{"Red", "Green", "Blue", "Purple", "Teal"}
	entries := make([]colors.Entry, len(names))
	for i, n := range names {
		entries[i] = colors.Entry{Name: n, Spec: "(0,0,0)"}
	}
	table := newTable(t, entries...)

	rng := rand.New(rand.NewPCG(1, 2))
	const trials = 50000

	counts := map[string]int{}
	for range trials {
		name, _, err := colors.PickRandom(table, rng)
		require.NoError(t, err)
		counts[name]++
	}

	want := 1.0 / float64(len(names))
	for _, n := range names {
		got := float64(counts[n]) / trials
		assert.InDelta(t, want, got, 0.01, "frequency of %s", n)
	}
}
