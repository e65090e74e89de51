package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData holds per-frame velocities in y-up world units. Positive
// SpeedY moves up.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	OnGround *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
