package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid tile to the world.
func CreateWall(ecs *ecs.ECS, tile leveldata.PlacedTile) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := newObject(ecs, tile.X, tile.Bottom(), tile.Size, tile.Size, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, obj)
	components.Tile.SetValue(wall, components.TileData{
		Kind: tile.Kind,
		Code: tile.Code,
	})

	return wall
}
