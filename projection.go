package cubeworld

// ProjectionCoordinates express a point P on a face's plane in the face's
// local basis:
//
//	P = P0 + Alpha*a + Beta*b
//
// where P0 is the face's first corner, a the vector from P0 to P1 and b the
// vector from P0 to P3.
type ProjectionCoordinates struct {
	Alpha float64
	Beta  float64
}

func NewProjectionCoordinates(alpha, beta float64) ProjectionCoordinates {
	return ProjectionCoordinates{Alpha: alpha, Beta: beta}
}

// ToUV converts the coordinates to lengths along the two face sides.
func (p ProjectionCoordinates) ToUV(normA, normB float64) (float64, float64) {
	return p.Alpha * normA, p.Beta * normB
}

// IsInsideFace reports whether the point lies within the face boundary.
func (p ProjectionCoordinates) IsInsideFace() bool {
	return p.Alpha >= 0 && p.Alpha <= 1 && p.Beta >= 0 && p.Beta <= 1
}
