package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index     int // 0 is the primary player the camera follows
	Direction float64
	SpawnX    float64 // Spawn centre in world coordinates
	SpawnY    float64
	Color     color.RGBA
	Respawns  int

	// Walk animation
	Frame      int
	FrameTimer int
}

// IsPrimary reports whether this player drives the camera.
func (p *PlayerData) IsPrimary() bool {
	return p.Index == 0
}

var Player = donburi.NewComponentType[PlayerData]()
