package ecs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plus3/platformer/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities    ecs.Query[struct{ *Health }]
	TotalHealth int
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += item.Health.Current
	}
}

type spawnOnceSystem struct {
	done bool
}

func (s *spawnOnceSystem) Execute(frame *ecs.UpdateFrame) {
	if s.done {
		return
	}
	s.done = true
	frame.Commands.Spawn(Position{X: 9}, Velocity{DX: 1})
}

type tickRecorder struct {
	Score ecs.Singleton[Score]
	Ticks []uint64
}

func (s *tickRecorder) Execute(frame *ecs.UpdateFrame) {
	s.Ticks = append(s.Ticks, frame.Tick)
	*s.Score.Get() += 1
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("systems run every frame", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, uint64(2), scheduler.Tick())
	})

	t.Run("queries see entities spawned between frames", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		health := &HealthSystem{}
		scheduler.Register(health)

		storage.Spawn(Health{Current: 50, Max: 100})
		storage.Spawn(Health{Current: 75, Max: 100})
		scheduler.Once(1.0)
		assert.Equal(t, 125, health.TotalHealth)

		storage.Spawn(Health{Current: 25, Max: 100})
		scheduler.Once(1.0)
		assert.Equal(t, 150, health.TotalHealth)
	})

	t.Run("delta time", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		id := storage.Spawn(Position{}, Velocity{DX: 10, DY: 20})
		scheduler.Register(&MovementSystem{})

		scheduler.Once(0.5)

		pos := ecs.ReadComponent[Position](storage, id)
		assert.Equal(t, Position{X: 5, Y: 10}, *pos)
	})

	t.Run("commands flush after the frame", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(&spawnOnceSystem{})
		scheduler.Register(movement)

		scheduler.Once(1.0)
		assert.Equal(t, 0, movement.Entities.Len(), "spawn is deferred")

		scheduler.Once(1.0)
		assert.Equal(t, 1, movement.Entities.Len())
	})

	t.Run("singleton fields and tick numbers", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		ecs.NewSingleton(storage, Score(0))
		scheduler := ecs.NewScheduler(storage)

		rec := &tickRecorder{}
		scheduler.Register(rec)

		for range 3 {
			scheduler.Once(0.016)
		}

		assert.Equal(t, []uint64{1, 2, 3}, rec.Ticks)
		var score *Score
		require.True(t, storage.ReadSingleton(&score))
		assert.Equal(t, Score(3), *score)
	})

	t.Run("run stops on context cancellation", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error)
		go func() {
			done <- scheduler.Run(ctx, time.Millisecond)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.True(t, errors.Is(err, context.Canceled))
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.NotZero(t, movement.ExecuteCount)
	})
}

func TestCommandsDefer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	commands := &ecs.Commands{}

	var order []int
	commands.Defer(func() { order = append(order, 1) })
	commands.Spawn(Position{X: 1})
	commands.Defer(func() {
		order = append(order, 2)
		assert.Len(t, storage.Archetypes(), 1, "spawns apply before deferred functions")
	})
	assert.Equal(t, 3, commands.Pending())

	commands.Flush(storage)
	assert.Equal(t, []int{1, 2}, order)
	assert.Zero(t, commands.Pending())

	commands.Flush(storage)
	assert.Equal(t, []int{1, 2}, order)
}
