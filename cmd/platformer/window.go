package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/ecs/debugui"
	debugui_ebiten "github.com/plus3/platformer/ecs/debugui/ebiten"
	"github.com/plus3/platformer/game"
	"github.com/plus3/platformer/input"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeySpace:  ebiten.KeySpace,
	input.KeyA:      ebiten.KeyA,
	input.KeyR:      ebiten.KeyR,
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyQ:      ebiten.KeyQ,
}

// keyboard reads keys from Ebiten unless the overlay owns the keyboard.
type keyboard struct {
	capture *ecs.Singleton[debugui.ImguiInputState]
}

func (k keyboard) IsKeyPressed(key input.Key) bool {
	if k.capture != nil && k.capture.Get().WantCaptureKeyboard {
		return false
	}
	ek, ok := ebitenKeys[key]
	return ok && ebiten.IsKeyPressed(ek)
}

// Game implements ebiten.Game on top of a game.World.
type Game struct {
	world   *game.World
	backend *debugui_ebiten.ImguiBackend
}

func runWindowed(world *game.World, debugUI bool) error {
	g := &Game{world: world}

	if debugUI {
		backend := debugui_ebiten.NewImguiBackend("Platformer", ScreenWidth, ScreenHeight)
		g.backend = &backend

		debugui.Register(world.Storage.Registry(), world.Storage)
		debugui.Spawn(world.Storage)
		world.Storage.Spawn(debugui.ImguiItem{Render: newWorldPanel(world).Render})
		world.Register(debugui.Systems(world.Scheduler)...)
		world.SetSource(keyboard{capture: ecs.NewSingleton[debugui.ImguiInputState](world.Storage)})
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Platformer")
		world.SetSource(keyboard{})
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	for _, k := range input.QuitKeys {
		if ebiten.IsKeyPressed(ebitenKeys[k]) {
			return ebiten.Termination
		}
	}

	if g.backend != nil {
		g.backend.BeginFrame()
	}
	g.world.Step()
	if g.backend != nil {
		g.backend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.world.ClearColor().NRGBA())

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
