package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel lays the grid out in world space and stores it on a level
// entity. Walls are created separately once the collision space exists.
func CreateLevel(ecs *ecs.ECS, name string, grid leveldata.TileGrid) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	tiles := leveldata.Layout(grid, cfg.Map.ScaledTileSize(), cfg.Map.Height)
	left, bottom, right, top := leveldata.Bounds(tiles)

	components.Level.Set(level, &components.LevelData{
		Name:  name,
		Grid:  grid,
		Tiles: tiles,
		Bounds: gamemath.Rect{
			Left:   left,
			Right:  right,
			Bottom: bottom,
			Top:    top,
		},
	})

	return level
}

// CreateWalls adds one solid wall per placed tile of the level.
func CreateWalls(ecs *ecs.ECS, level *components.LevelData) {
	for _, tile := range level.Tiles {
		CreateWall(ecs, tile)
	}
}
