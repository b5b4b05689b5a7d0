package game

// Tick advances pos by one velocity step.
func Tick(pos *Position, vel Velocity) {
	pos.X += vel.X
	pos.Y += vel.Y
}
