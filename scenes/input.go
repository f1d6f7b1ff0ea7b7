package scenes

import (
	"github.com/automoto/dodgefall/components"
	cfg "github.com/automoto/dodgefall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps actions to the keys that trigger them.
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:   {ebiten.KeyLeft, ebiten.KeyA},
	cfg.ActionMoveRight:  {ebiten.KeyRight, ebiten.KeyD},
	cfg.ActionToggleMute: {ebiten.KeyM},
	cfg.ActionQuit:       {ebiten.KeyEscape},
}

// updateInput polls the keyboard into the Input singleton.
// Must run before the simulation step.
func updateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Advance()

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
