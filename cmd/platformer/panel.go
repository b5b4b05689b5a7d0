package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/game"
)

// worldPanel shows the mover and the clear color.
type worldPanel struct {
	world     *game.World
	positions *ecs.View[struct {
		ecs.EntityId
		*game.Position
		*game.Velocity
	}]
}

func newWorldPanel(world *game.World) *worldPanel {
	return &worldPanel{
		world: world,
		positions: ecs.NewView[struct {
			ecs.EntityId
			*game.Position
			*game.Velocity
		}](world.Storage),
	}
}

func (p *worldPanel) Render() {
	if !imgui.BeginV("World", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	bg := p.world.ClearColor()
	imgui.Text(fmt.Sprintf("Mode: %s", p.world.Mode()))
	imgui.Text(fmt.Sprintf("Clear color: %s %s", bg.RGB, bg.Name))
	imgui.Text(fmt.Sprintf("Trigger presses: %d", p.world.Triggers()))

	imgui.Separator()
	for mover := range p.positions.Values() {
		imgui.BulletText(fmt.Sprintf("%s at (%.1f, %.1f) moving (%.1f, %.1f)",
			mover.EntityId, mover.Position.X, mover.Position.Y, mover.Velocity.X, mover.Velocity.Y))
	}

	imgui.End()
}
