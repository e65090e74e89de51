package gamemath

// HorizontalSpeed returns the walking speed for the held direction keys.
// Holding both directions cancels out.
func HorizontalSpeed(left, right bool, speed float64) float64 {
	switch {
	case left && !right:
		return -speed
	case right && !left:
		return speed
	}
	return 0
}

// ApplyGravity pulls a y-up vertical speed down by gravity and clamps the
// fall to maxFall.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY -= gravity
	if speedY < -maxFall {
		return -maxFall
	}
	return speedY
}
