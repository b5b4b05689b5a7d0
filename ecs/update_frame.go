package ecs

// UpdateFrame is handed to every system during one scheduler frame.
type UpdateFrame struct {
	// Tick counts frames from 1.
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}
