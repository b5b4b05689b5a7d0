package debugui

import "github.com/plus3/platformer/ecs"

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// Register adds the overlay's component types and singletons to a world.
func Register(registry *ecs.ComponentRegistry, storage *ecs.Storage) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
	ecs.NewSingleton(storage, ImguiInputState{})
}

// Systems returns the overlay systems in the order they must run.
func Systems(scheduler *ecs.Scheduler) []ecs.System {
	return []ecs.System{
		&PerformanceStatsSystem{Scheduler: scheduler},
		&ImguiSystem{},
	}
}

// Spawn creates the performance window entity.
func Spawn(storage *ecs.Storage) {
	storage.Spawn(NewPerformanceStatsComponent(120))
}
