package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpaceData is the static collision space shared by every actor.
type SpaceData struct {
	*resolv.Space
	Origin math.Vec2 // Added to world coordinates to get space coordinates
}

var Space = donburi.NewComponentType[SpaceData]()
