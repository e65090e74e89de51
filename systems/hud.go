package systems

import (
	"fmt"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/fonts"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the level name, the viewport origin and whether each
// player is standing on something.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := HUDLines(ecs)
	face := fonts.Regular.Get()

	x := int(cfg.HUD.Margin)
	y := cfg.HUD.Margin + cfg.HUD.LineGap
	for _, line := range lines {
		text.Draw(screen, line, face, x, int(y), cfg.HUD.TextColor)
		y += cfg.HUD.LineGap
	}
}

// HUDLines builds the HUD text for the current frame.
func HUDLines(ecs *ecs.ECS) []string {
	var lines []string

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		lines = append(lines, "Level: "+components.Level.Get(levelEntry).Name)
	}
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		view := components.Camera.Get(cameraEntry).View
		lines = append(lines, fmt.Sprintf("View: %.0f, %.0f", view.Left, view.Bottom))
	}

	players := make([]string, 0, 2)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		state := "airborne"
		if components.Physics.Get(e).OnGround != nil {
			state = "grounded"
		}
		line := fmt.Sprintf("P%d: %s", player.Index+1, state)
		if player.Respawns > 0 {
			line += fmt.Sprintf("  falls: %d", player.Respawns)
		}
		for len(players) <= player.Index {
			players = append(players, "")
		}
		players[player.Index] = line
	})
	for _, line := range players {
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
