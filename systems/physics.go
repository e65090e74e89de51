package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Touching surfaces closer than this count as touching, not overlapping.
const contactEpsilon = 1e-6

// UpdatePhysics advances every player by one step: gravity first, then the
// vertical move, then the horizontal move, each stopped at the first solid
// in the way. Players never block each other.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, cfg.Physics.MaxFallSpeed)

		resolveVertical(physics, obj.Object)
		resolveHorizontal(physics, obj.Object)
		obj.Update()
	})
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY
	if dy == 0 {
		return
	}

	dy, hit := sweep(object, 0, dy)
	if hit != nil {
		if physics.SpeedY < 0 {
			physics.OnGround = hit
		}
		physics.SpeedY = 0
	}
	object.Y += dy
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	dx, hit := sweep(object, dx, 0)
	if hit != nil {
		physics.SpeedX = 0
	}
	object.X += dx
}

// sweep moves object along one axis (one of dx, dy is zero) and returns how
// far it can go before touching a solid, plus the solid it stopped at.
func sweep(object *resolv.Object, dx, dy float64) (float64, *resolv.Object) {
	move := dx + dy
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return move, nil
	}

	var hit *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		var gap float64
		if dx != 0 {
			if !spansOverlap(object.Y, object.H, solid.Y, solid.H) {
				continue
			}
			gap = gapAlong(object.X, object.W, solid.X, solid.W, move)
		} else {
			if !spansOverlap(object.X, object.W, solid.X, solid.W) {
				continue
			}
			gap = gapAlong(object.Y, object.H, solid.Y, solid.H, move)
		}

		switch {
		case move > 0 && gap >= -contactEpsilon && gap < move:
			move, hit = max(gap, 0), solid
		case move < 0 && gap <= contactEpsilon && gap > move:
			move, hit = min(gap, 0), solid
		}
	}
	return move, hit
}

// gapAlong returns the signed distance object can travel in the direction
// of move before its leading edge meets the solid's near edge.
func gapAlong(pos, size, solidPos, solidSize, move float64) float64 {
	if move > 0 {
		return solidPos - (pos + size)
	}
	return (solidPos + solidSize) - pos
}

// spansOverlap reports whether two 1D spans overlap by more than a touch.
func spansOverlap(a, aSize, b, bSize float64) bool {
	return a < b+bSize-contactEpsilon && a+aSize > b+contactEpsilon
}

// CanJump reports whether a solid sits directly under the object, probing
// one unit down.
func CanJump(obj *components.ObjectData) bool {
	check := obj.Check(0, -1, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if spansOverlap(obj.X, obj.W, solid.X, solid.W) &&
			spansOverlap(obj.Y-1, obj.H, solid.Y, solid.H) {
			return true
		}
	}
	return false
}
