package components

import (
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData wraps a collision object. Collision coordinates are y-up world
// coordinates shifted by Origin so the whole map sits inside the space grid.
type ObjectData struct {
	*resolv.Object
	Origin math.Vec2
}

// Bounds returns the object's box in world coordinates.
func (o ObjectData) Bounds() gamemath.Rect {
	left := o.X - o.Origin.X
	bottom := o.Y - o.Origin.Y
	return gamemath.Rect{
		Left:   left,
		Right:  left + o.W,
		Bottom: bottom,
		Top:    bottom + o.H,
	}
}

// MoveTo places the object's bottom-left corner at a world position.
func (o ObjectData) MoveTo(left, bottom float64) {
	o.X = left + o.Origin.X
	o.Y = bottom + o.Origin.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
