package cubeworld

// Point2 is a projected point in screen coordinates. The inFront flag
// records whether the original 3D point was in front of the camera: a point
// behind the camera still projects to finite pixel coordinates (the
// projection uses the absolute depth), so consumers use the flag to filter
// out these mirror projections.
type Point2 struct {
	X float64
	Y float64

	inFront    bool
	hasInFront bool
}

func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

func NewPoint2WithDirection(x, y float64, inFront bool) Point2 {
	return Point2{X: x, Y: y, inFront: inFront, hasInFront: true}
}

// InFront reports whether the projected point was in front of the camera.
// Points created without direction information count as in front.
func (p Point2) InFront() bool {
	if !p.hasInFront {
		return true
	}
	return p.inFront
}
