package systems

import (
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera scrolls the view to keep the primary player inside the
// margins. The offset is only recomputed when the view actually moves.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Changed = false

	playerEntry, ok := primaryPlayer(e)
	if !ok {
		return
	}
	player := components.Object.Get(playerEntry).Bounds()

	view, changed := gamemath.ScrollViewport(
		camera.View,
		player,
		float64(config.C.Width),
		float64(config.C.Height),
		config.Camera.Margins(),
	)
	if !changed {
		return
	}

	camera.SetViewport(view, float64(config.C.Height))
	camera.Changed = true
}

// primaryPlayer returns the player the camera follows.
func primaryPlayer(e *ecs.ECS) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Player.Get(entry).IsPrimary() {
			found = entry
		}
	})
	return found, found != nil
}
