package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SetFullscreen is swapped out in tests so toggling never touches a window.
var SetFullscreen = ebiten.SetFullscreen

// UpdateSettings handles the debug overlay (F1) and fullscreen (F11)
// toggles. Both are saved whenever they change.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := GetOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		SaveCurrentSettings(settings)
	}

	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		ToggleFullscreen(ecs)
	}
}

// ToggleFullscreen flips fullscreen, saves it and returns the new state.
func ToggleFullscreen(ecs *ecs.ECS) bool {
	settings := GetOrCreateSettings(ecs)
	settings.Fullscreen = !settings.Fullscreen
	SetFullscreen(settings.Fullscreen)
	SaveCurrentSettings(settings)
	return settings.Fullscreen
}

// GetOrCreateSettings returns the singleton Settings component. A new one
// starts from the saved settings, or from the command line debug flag.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		data := components.SettingsData{Debug: cfg.Debug.Overlay}
		if saved, _ := LoadSettings(); saved != nil {
			data.Fullscreen = saved.Fullscreen
			data.Debug = data.Debug || saved.Debug
		}
		components.Settings.SetValue(ent, data)
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
