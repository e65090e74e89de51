package gamemath

// Rect is an axis-aligned box in y-up world coordinates.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Top - Bottom.
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// Viewport is the scroll offset of the screen: the world coordinates shown at
// the left and bottom screen edges.
type Viewport struct {
	Left   float64
	Bottom float64
}

// Bounds returns the visible world region as (left, right, bottom, top).
func (v Viewport) Bounds(screenW, screenH float64) (left, right, bottom, top float64) {
	return v.Left, v.Left + screenW, v.Bottom, v.Bottom + screenH
}

// Margins is the minimum distance kept between the followed box and each
// screen edge before the view scrolls.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// ScrollViewport moves v just far enough to keep player inside the margin
// boundaries. The four edges are checked in order (left, right, top, bottom),
// each against the offset left by the previous check. It reports whether
// the viewport moved.
func ScrollViewport(v Viewport, player Rect, screenW, screenH float64, m Margins) (Viewport, bool) {
	changed := false

	leftBoundary := v.Left + m.Left
	if player.Left < leftBoundary {
		v.Left -= leftBoundary - player.Left
		changed = true
	}

	rightBoundary := v.Left + screenW - m.Right
	if player.Right > rightBoundary {
		v.Left += player.Right - rightBoundary
		changed = true
	}

	topBoundary := v.Bottom + screenH - m.Top
	if player.Top > topBoundary {
		v.Bottom += player.Top - topBoundary
		changed = true
	}

	bottomBoundary := v.Bottom + m.Bottom
	if player.Bottom < bottomBoundary {
		v.Bottom -= bottomBoundary - player.Bottom
		changed = true
	}

	return v, changed
}
