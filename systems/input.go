package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KeyState reports whether a key is held. Tests swap it for a fake keyboard.
var KeyState = ebiten.IsKeyPressed

// UpdateInput polls the global bindings (pause, debug, fullscreen).
// Must run BEFORE the systems that read them.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	pollBindings(&input.Current, cfg.Input.Bindings)
}

// UpdateMultiPlayerInput polls the movement keys of every player's control
// scheme. Each player only ever sees its own keys.
func UpdateMultiPlayerInput(ecs *ecs.ECS) {
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.PreviousInput = input.CurrentInput
		input.CurrentInput = [cfg.ActionCount]bool{}

		scheme := int(input.ControlScheme)
		if scheme < 0 || scheme >= len(cfg.Input.Schemes) {
			return
		}
		pollBindings(&input.CurrentInput, cfg.Input.Schemes[scheme])
	})
}

func pollBindings(dst *[cfg.ActionCount]bool, bindings map[cfg.ActionID][]ebiten.Key) {
	for actionID, keys := range bindings {
		for _, key := range keys {
			if KeyState(key) {
				dst[actionID] = true
			}
		}
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for a global action.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

// GetPlayerAction returns the ActionState of an action for one player.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	return actionState(input.CurrentInput[id], input.PreviousInput[id])
}

func actionState(curr, prev bool) components.ActionState {
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
