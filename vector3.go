package cubeworld

import "math"

// Vector3 is a point or a direction in 3D space. It is a plain value type:
// copy it freely.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// UnitZ points upward.
var UnitZ = Vector3{X: 0, Y: 0, Z: 1}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vector3) Mul(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Div(s float64) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3) Opposite() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Clockwise returns the vector rotated 90 degrees clockwise around the z-axis.
func (v Vector3) Clockwise() Vector3 {
	return Vector3{X: v.Y, Y: -v.X, Z: v.Z}
}

// Anticlockwise returns the vector rotated 90 degrees anticlockwise around the
// z-axis.
func (v Vector3) Anticlockwise() Vector3 {
	return Vector3{X: -v.Y, Y: v.X, Z: v.Z}
}

func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize scales the vector in place to unit length. The zero vector is
// left untouched.
func (v *Vector3) Normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	v.X /= n
	v.Y /= n
	v.Z /= n
}

// LineTo returns the vector going from v to other.
func (v Vector3) LineTo(other Vector3) Vector3 {
	return other.Sub(v)
}

func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Norm()
}

// At returns the component at the given index (0=x, 1=y, 2=z).
func (v Vector3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("vector index out of range")
}

func (v *Vector3) Clamp(min, max float64) {
	v.X = clampFloat(v.X, min, max)
	v.Y = clampFloat(v.Y, min, max)
	v.Z = clampFloat(v.Z, min, max)
}
