package components

import (
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name   string
	Grid   leveldata.TileGrid
	Tiles  []leveldata.PlacedTile
	Bounds gamemath.Rect // World area covered by tiles
}

var Level = donburi.NewComponentType[LevelData]()
