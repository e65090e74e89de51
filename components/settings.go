package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles that persist between runs.
type SettingsData struct {
	Fullscreen bool
	Debug      bool
}

var Settings = donburi.NewComponentType[SettingsData]()
