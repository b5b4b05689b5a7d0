// Package input tracks keyboard state across frames so systems can ask for
// level-triggered (held) and edge-triggered (just pressed / just released)
// conditions without knowing which window backend produced the keys.
package input

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownKey  = errors.New("unknown key")
	ErrReservedKey = errors.New("key is reserved for quitting")
)

// QuitKeys end a windowed run, so they cannot be bound to game actions.
var QuitKeys = []Key{KeyQ, KeyEscape}

// Key identifies a keyboard key independently of any window backend.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyA
	KeyR
	KeyEscape
	KeyQ
)

var keyNames = map[Key]string{
	KeyUnknown: "Unknown",
	KeySpace:   "Space",
	KeyA:       "A",
	KeyR:       "R",
	KeyEscape:  "Escape",
	KeyQ:       "Q",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(?)"
}

// ParseKey resolves a key name as printed by Key.String.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && k != KeyUnknown {
			return k, true
		}
	}
	return KeyUnknown, false
}

// IsQuitKey reports whether k is one of QuitKeys.
func IsQuitKey(k Key) bool {
	return slices.Contains(QuitKeys, k)
}

// ParseBinding resolves a key name for a game action. Quit keys are rejected.
func ParseBinding(name string) (Key, error) {
	k, ok := ParseKey(name)
	if !ok {
		return KeyUnknown, fmt.Errorf("%w %q", ErrUnknownKey, name)
	}
	if IsQuitKey(k) {
		return KeyUnknown, fmt.Errorf("%w: %s", ErrReservedKey, k)
	}
	return k, nil
}

// Source reports whether a key is held right now.
type Source interface {
	IsKeyPressed(k Key) bool
}

// SourceFunc adapts a function to Source.
type SourceFunc func(k Key) bool

func (f SourceFunc) IsKeyPressed(k Key) bool { return f(k) }

// State holds the pressed set of the current and the previous frame for a
// fixed list of watched keys.
type State struct {
	watched  []Key
	current  map[Key]bool
	previous map[Key]bool
}

// NewState watches the given keys. Keys not watched always read as released.
func NewState(keys ...Key) State {
	return State{
		watched:  keys,
		current:  make(map[Key]bool, len(keys)),
		previous: make(map[Key]bool, len(keys)),
	}
}

// Update samples src once; call it exactly once per frame.
func (s *State) Update(src Source) {
	s.previous, s.current = s.current, s.previous
	for _, k := range s.watched {
		s.current[k] = src.IsKeyPressed(k)
	}
}

// Reset forgets all samples, as if every key had been released two frames ago.
func (s *State) Reset() {
	clear(s.current)
	clear(s.previous)
}

// Pressed reports whether k is held this frame.
func (s *State) Pressed(k Key) bool {
	return s.current[k]
}

// JustPressed reports whether k went down between the previous and current frame.
func (s *State) JustPressed(k Key) bool {
	return s.current[k] && !s.previous[k]
}

// JustReleased reports whether k went up between the previous and current frame.
func (s *State) JustReleased(k Key) bool {
	return !s.current[k] && s.previous[k]
}
