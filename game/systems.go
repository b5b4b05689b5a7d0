package game

import (
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/input"
)

// InputSystem samples Source into the Keyboard singleton. It runs first so
// every later system sees the same snapshot for the frame.
type InputSystem struct {
	Source   input.Source
	Keyboard ecs.Singleton[Keyboard]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Source == nil {
		return
	}
	s.Keyboard.Get().State.Update(s.Source)
	if a, ok := s.Source.(input.Advancer); ok {
		a.Advance()
	}
}

type MovementSystem struct {
	Movers ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	for mover := range s.Movers.Values() {
		Tick(mover.Position, *mover.Velocity)
	}
}

// PositionReportSystem logs where every positioned entity is after movement.
type PositionReportSystem struct {
	Positions ecs.Query[struct{ *Position }]
	Log       ecs.Singleton[Logger]
}

func (s *PositionReportSystem) Execute(frame *ecs.UpdateFrame) {
	log := s.Log.Get().get()
	for id, item := range s.Positions.Iter() {
		log.Info("entity position", "tick", frame.Tick, "entity", id, "x", item.Position.X, "y", item.Position.Y)
	}
}

// KeyboardLogSystem reports the observed key. It never changes world state.
type KeyboardLogSystem struct {
	Keyboard ecs.Singleton[Keyboard]
	Log      ecs.Singleton[Logger]
}

func (s *KeyboardLogSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.Get()
	log := s.Log.Get().get()
	key := kb.Observed

	if kb.State.Pressed(key) {
		log.Info("key currently pressed", "key", key)
	}
	if kb.State.JustPressed(key) {
		log.Info("key just pressed", "key", key)
	}
	if kb.State.JustReleased(key) {
		log.Info("key just released", "key", key)
	}
}

// ClearColorSystem swaps the clear color once per press of the trigger key.
type ClearColorSystem struct {
	Reactor    *Reactor
	Keyboard   ecs.Singleton[Keyboard]
	ClearColor ecs.Singleton[ClearColor]
	Log        ecs.Singleton[Logger]

	// Fired counts trigger edges seen so far.
	Fired int
}

func (s *ClearColorSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.Get()
	if !kb.State.JustPressed(kb.Trigger) {
		return
	}
	s.Fired++

	current := s.ClearColor.Get()
	next, err := s.Reactor.OnTrigger(*current)
	if err != nil {
		panic(err)
	}
	if next != *current {
		s.Log.Get().get().Info("clear color changed", "tick", frame.Tick, "color", next.RGB, "name", next.Name)
	}
	*current = next
}
