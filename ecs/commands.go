package ecs

// Commands buffers work that must not run while systems iterate storage.
// The buffer is flushed once at the end of every frame.
type Commands struct {
	spawns [][]any
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Defer queues fn to run after all systems of the frame have executed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports how many operations are queued.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.defers)
}

// Flush applies spawns, then runs deferred functions in queue order, and
// resets the buffer.
func (c *Commands) Flush(storage *Storage) {
	for _, components := range c.spawns {
		storage.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	c.spawns = c.spawns[:0]
	clear(c.defers)
	c.defers = c.defers[:0]
}
