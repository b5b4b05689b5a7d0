package input

import "errors"

var ErrPulsePeriod = errors.New("pulse period must be 0 or at least 2")

// Script is a Source that replays a fixed sequence of frames. Each frame is the
// set of keys held during it. Call Advance once per frame after sampling.
// Past the end of the script every key reads as released.
type Script struct {
	frames [][]Key
	pos    int
}

func NewScript(frames ...[]Key) *Script {
	return &Script{frames: frames}
}

// Hold builds n consecutive frames holding the given keys.
func Hold(n int, keys ...Key) [][]Key {
	frames := make([][]Key, n)
	for i := range frames {
		frames[i] = keys
	}
	return frames
}

// Concat joins frame sequences.
func Concat(parts ...[][]Key) [][]Key {
	var out [][]Key
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func (s *Script) IsKeyPressed(k Key) bool {
	if s.pos >= len(s.frames) {
		return false
	}
	for _, held := range s.frames[s.pos] {
		if held == k {
			return true
		}
	}
	return false
}

func (s *Script) Advance() {
	s.pos++
}

// Done reports whether every frame has been replayed.
func (s *Script) Done() bool {
	return s.pos >= len(s.frames)
}

// Advancer is implemented by sources that replay recorded frames.
type Advancer interface {
	Advance()
}

// Pulse is a Source that taps one key for a single frame in every period
// frames, starting with the last frame of the first period. Every tap is a
// separate press, so a period of 1 is rejected. Period 0 never taps.
type Pulse struct {
	key    Key
	period int
	frame  int
}

func NewPulse(key Key, period int) (*Pulse, error) {
	if period < 0 || period == 1 {
		return nil, ErrPulsePeriod
	}
	return &Pulse{key: key, period: period}, nil
}

func (p *Pulse) IsKeyPressed(k Key) bool {
	return k == p.key && p.period > 0 && p.frame%p.period == p.period-1
}

func (p *Pulse) Advance() {
	p.frame++
}
