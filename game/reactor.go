package game

import (
	"errors"
	"log/slog"

	"github.com/plus3/platformer/colors"
)

type Mode int

const (
	// ModeFixed always yields colors.Purple.
	ModeFixed Mode = iota
	// ModeTable draws a random entry from the color table.
	ModeTable
)

func (m Mode) String() string {
	if m == ModeTable {
		return "table"
	}
	return "fixed"
}

// Reactor picks the next clear color when the trigger fires.
type Reactor struct {
	table *colors.Table
	rng   colors.Rand
	fixed colors.RGB
	log   *slog.Logger
}

// NewReactor returns a Reactor in fixed mode when table is nil and in table
// mode otherwise. An empty table is rejected.
func NewReactor(table *colors.Table, rng colors.Rand, logger *slog.Logger) (*Reactor, error) {
	if table != nil && table.Len() == 0 {
		return nil, colors.ErrEmptyTable
	}
	if table != nil && rng == nil {
		return nil, errors.New("table mode needs a random source")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reactor{table: table, rng: rng, fixed: colors.Purple, log: logger}, nil
}

func (r *Reactor) Mode() Mode {
	if r.table == nil {
		return ModeFixed
	}
	return ModeTable
}

// OnTrigger returns the color that replaces current. In table mode a spec that
// fails to parse leaves current in place and is not reported as an error;
// only an empty table is.
func (r *Reactor) OnTrigger(current ClearColor) (ClearColor, error) {
	if r.table == nil {
		return ClearColor{RGB: r.fixed}, nil
	}

	name, spec, err := colors.PickRandom(r.table, r.rng)
	if err != nil {
		return current, err
	}

	rgb, err := colors.Parse(spec)
	if err != nil {
		r.log.Debug("ignoring unparsable color", "name", name, "error", err)
		return current, nil
	}
	return ClearColor{RGB: rgb, Name: name}, nil
}
