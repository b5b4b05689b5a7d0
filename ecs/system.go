package ecs

// System represents a behavior that operates on entities with specific components.
// Systems are structs that may embed Query and Singleton fields; the Scheduler
// binds those fields on Register and refreshes queries before every Execute.
// Any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// storageBinder is implemented by *Query[T] and *Singleton[T].
type storageBinder interface {
	Init(storage *Storage)
}

// executor is implemented by *Query[T].
type executor interface {
	Execute()
}
