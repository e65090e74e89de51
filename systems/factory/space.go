package factory

import (
	"math"

	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateSpace builds a collision space that covers bounds plus padding on
// every side. World coordinates may be negative; the space origin shifts
// them into the grid.
func CreateSpace(ecs *ecs.ECS, bounds gamemath.Rect, padding float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	width := int(math.Ceil(bounds.Width() + 2*padding))
	height := int(math.Ceil(bounds.Height() + 2*padding))
	components.Space.Set(space, &components.SpaceData{
		Space: resolv.NewSpace(width, height, cellSize, cellSize),
		Origin: dmath.Vec2{
			X: padding - bounds.Left,
			Y: padding - bounds.Bottom,
		},
	})
	return space
}

// newObject creates a collision object at a world position and adds it to
// the space, if one exists.
func newObject(ecs *ecs.ECS, left, bottom, w, h float64, tags ...string) components.ObjectData {
	var origin dmath.Vec2
	spaceEntry, hasSpace := components.Space.First(ecs.World)
	if hasSpace {
		origin = components.Space.Get(spaceEntry).Origin
	}

	obj := resolv.NewObject(left+origin.X, bottom+origin.Y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	if hasSpace {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return components.ObjectData{Object: obj, Origin: origin}
}
