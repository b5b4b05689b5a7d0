package game

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/plus3/platformer/colors"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/input"
)

// FrameTime is the delta time passed to systems by Step.
const FrameTime = 1.0 / 60.0

type Config struct {
	Start        Position
	Velocity     Velocity
	InitialColor colors.RGB
	Trigger      input.Key
	Observed     input.Key
	Seed         uint64
	// Rand overrides the seeded generator when set.
	Rand colors.Rand
}

func DefaultConfig() Config {
	return Config{
		Start:        Position{X: 0, Y: 0},
		Velocity:     Velocity{X: 1, Y: 1},
		InitialColor: colors.Periwinkle,
		Trigger:      input.KeySpace,
		Observed:     input.KeyA,
	}
}

// World owns the ECS storage and the fixed system order of the demo.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Mover     ecs.EntityId

	input      *InputSystem
	clearColor *ClearColorSystem
	reactor    *Reactor
	keyboard   *ecs.Singleton[Keyboard]
	color      *ecs.Singleton[ClearColor]
}

// NewWorld spawns the moving entity and registers the systems. table may be
// nil for fixed mode.
func NewWorld(cfg Config, table *colors.Table, logger *slog.Logger) (*World, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	reactor, err := NewReactor(table, rng, logger)
	if err != nil {
		return nil, err
	}

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)

	storage := ecs.NewStorage(registry)

	w := &World{
		Storage: storage,
		reactor: reactor,
		keyboard: ecs.NewSingleton(storage, Keyboard{
			State:    input.NewState(cfg.Trigger, cfg.Observed),
			Trigger:  cfg.Trigger,
			Observed: cfg.Observed,
		}),
		color: ecs.NewSingleton(storage, ClearColor{RGB: cfg.InitialColor}),
	}
	ecs.NewSingleton(storage, Logger{Logger: logger})

	w.Mover = storage.Spawn(cfg.Start, cfg.Velocity)

	w.input = &InputSystem{}
	w.clearColor = &ClearColorSystem{Reactor: reactor}

	w.Scheduler = ecs.NewScheduler(storage)
	w.Scheduler.Register(w.input)
	w.Scheduler.Register(&MovementSystem{})
	w.Scheduler.Register(&PositionReportSystem{})
	w.Scheduler.Register(&KeyboardLogSystem{})
	w.Scheduler.Register(w.clearColor)

	logger.Debug("world ready", "mode", reactor.Mode(), "entity", w.Mover)
	return w, nil
}

// Register appends extra systems, such as a debug overlay, after the demo's own.
func (w *World) Register(systems ...ecs.System) {
	for _, s := range systems {
		w.Scheduler.Register(s)
	}
}

// SetSource changes where key state is sampled from at the start of each frame.
func (w *World) SetSource(src input.Source) {
	w.input.Source = src
}

// Step runs one frame.
func (w *World) Step() {
	w.Scheduler.Once(FrameTime)
}

// Run steps the world every interval until ctx ends.
func (w *World) Run(ctx context.Context, interval time.Duration) error {
	return w.Scheduler.Run(ctx, interval)
}

func (w *World) Mode() Mode {
	return w.reactor.Mode()
}

// ClearColor returns the current background color.
func (w *World) ClearColor() ClearColor {
	return *w.color.Get()
}

// Position returns the mover's current position.
func (w *World) Position() Position {
	return *ecs.ReadComponent[Position](w.Storage, w.Mover)
}

// Triggers returns how many trigger presses have been handled.
func (w *World) Triggers() int {
	return w.clearColor.Fired
}
