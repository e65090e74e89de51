package components

import (
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	View gamemath.Viewport
	// Offset maps world to screen: sx = x + Offset.X, sy = Offset.Y - y.
	// It only changes when the view scrolls.
	Offset  math.Vec2
	Changed bool // The view scrolled during the last update
}

// SetViewport stores a new view and recomputes the world-to-screen offset.
func (c *CameraData) SetViewport(v gamemath.Viewport, screenH float64) {
	c.View = v
	c.Offset = math.Vec2{X: -v.Left, Y: screenH + v.Bottom}
}

// WorldToScreen converts a y-up world point to y-down screen pixels.
func (c *CameraData) WorldToScreen(x, y float64) (float64, float64) {
	return x + c.Offset.X, c.Offset.Y - y
}

var Camera = donburi.NewComponentType[CameraData]()
