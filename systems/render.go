package systems

import (
	"sort"

	"github.com/automoto/tilehop/assets"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawLevel renders every wall tile that intersects the screen.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		bounds := components.Object.Get(e).Bounds()
		x, y := camera.WorldToScreen(bounds.Left, bounds.Top)

		// Viewport culling
		if x+bounds.Width() < 0 || x > float64(width) || y+bounds.Height() < 0 || y > float64(height) {
			return
		}

		img := assets.TileImage(components.Tile.Get(e).Kind)
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawPlayers renders the players, the primary player last so it ends up
// on top when they overlap.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})
	sort.Slice(players, func(i, j int) bool {
		return components.Player.Get(players[i]).Index > components.Player.Get(players[j]).Index
	})

	for _, e := range players {
		player := components.Player.Get(e)
		bounds := components.Object.Get(e).Bounds()
		frames := assets.PlayerFrames(player.Color)
		img := frames[player.Frame%len(frames)]

		x, y := camera.WorldToScreen(bounds.Left, bounds.Top)

		drawOp.GeoM.Reset()
		if player.Direction == cfg.DirectionLeft {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	}
}
