package components

import (
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type TileData struct {
	Kind leveldata.TileKind
	Code int
}

var Tile = donburi.NewComponentType[TileData]()
