package game

import (
	"log/slog"

	"github.com/plus3/platformer/colors"
	"github.com/plus3/platformer/input"
)

type Position struct {
	X, Y float32
}

type Velocity struct {
	X, Y float32
}

// ClearColor is the background the renderer fills the window with.
type ClearColor struct {
	colors.RGB
	// Name is the table entry the color came from, empty for fixed colors.
	Name string
}

// Keyboard is the per-frame key state plus the keys the systems react to.
type Keyboard struct {
	State    input.State
	Trigger  input.Key
	Observed input.Key
}

// Logger carries the world's logger to systems.
type Logger struct {
	*slog.Logger
}

func (l *Logger) get() *slog.Logger {
	if l == nil || l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
