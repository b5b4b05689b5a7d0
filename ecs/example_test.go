package ecs_test

import (
	"fmt"

	"github.com/plus3/platformer/ecs"
)

type Transform struct {
	X, Y float32
}

type Speed struct {
	DX, DY float32
}

type PhysicsSystem struct {
	Entities ecs.Query[struct {
		*Transform
		*Speed
	}]
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Values() {
		entity.Transform.X += entity.Speed.DX
		entity.Transform.Y += entity.Speed.DY
	}
}

type FrameCounter struct {
	Frames int
}

type CounterSystem struct {
	Counter ecs.Singleton[FrameCounter]
}

func (s *CounterSystem) Execute(frame *ecs.UpdateFrame) {
	s.Counter.Get().Frames++
}

// ExampleScheduler builds a loop with one query-driven system and one
// singleton-driven system.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Transform{X: 0, Y: 0}, Speed{DX: 10, DY: 5})
	storage.Spawn(Transform{X: 100, Y: 100}, Speed{DX: -5, DY: -5})
	ecs.NewSingleton(storage, FrameCounter{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PhysicsSystem{})
	scheduler.Register(&CounterSystem{})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	view := ecs.NewView[struct{ *Transform }](storage)
	for item := range view.Values() {
		fmt.Printf("Position: (%.0f, %.0f)\n", item.Transform.X, item.Transform.Y)
	}

	var counter *FrameCounter
	storage.ReadSingleton(&counter)
	fmt.Printf("Frames: %d\n", counter.Frames)

	// Output:
	// Position: (20, 10)
	// Position: (90, 90)
	// Frames: 2
}

// ExampleNewSingleton shows that every handle to a singleton type shares one value.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	counter := ecs.NewSingleton(storage, FrameCounter{Frames: 1})
	counter.Get().Frames = 5

	same := ecs.NewSingleton[FrameCounter](storage)
	fmt.Printf("Frames: %d\n", same.Get().Frames)

	// Output:
	// Frames: 5
}
