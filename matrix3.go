package cubeworld

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix3 is a 3x3 matrix, stored row by row. It is always passed by value;
// nothing owns a matrix for longer than a single computation.
type Matrix3 struct {
	a11, a12, a13 float64
	a21, a22, a23 float64
	a31, a32, a33 float64
}

const solveEpsilon = 1e-12

func NewMatrix3(a11, a12, a13, a21, a22, a23, a31, a32, a33 float64) Matrix3 {
	return Matrix3{a11, a12, a13, a21, a22, a23, a31, a32, a33}
}

func Matrix3FromRows(r1, r2, r3 Vector3) Matrix3 {
	return Matrix3{
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
		r3.X, r3.Y, r3.Z,
	}
}

func Matrix3FromColumns(c1, c2, c3 Vector3) Matrix3 {
	return Matrix3{
		c1.X, c2.X, c3.X,
		c1.Y, c2.Y, c3.Y,
		c1.Z, c2.Z, c3.Z,
	}
}

func IdentityMatrix3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// ZRotationMatrix returns the rotation of theta radians around the z-axis.
func ZRotationMatrix(theta float64) Matrix3 {
	return FromMGLMatrix(mgl64.Rotate3DZ(theta))
}

// AxisRotationMatrix returns the rotation of theta radians around an
// arbitrary axis (Rodrigues' formula, through mgl64).
func AxisRotationMatrix(axis Vector3, theta float64) Matrix3 {
	axis.Normalize()
	m := mgl64.HomogRotate3D(theta, mgl64.Vec3{axis.X, axis.Y, axis.Z})
	return FromMGLMatrix(m.Mat3())
}

// FromMGLMatrix converts a column-major mgl64 matrix.
func FromMGLMatrix(m mgl64.Mat3) Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Matrix3) ToMGLMatrix() mgl64.Mat3 {
	return mgl64.Mat3{
		m.a11, m.a21, m.a31,
		m.a12, m.a22, m.a32,
		m.a13, m.a23, m.a33,
	}
}

func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		X: m.a11*v.X + m.a12*v.Y + m.a13*v.Z,
		Y: m.a21*v.X + m.a22*v.Y + m.a23*v.Z,
		Z: m.a31*v.X + m.a32*v.Y + m.a33*v.Z,
	}
}

func (m Matrix3) Det() float64 {
	return m.a11*(m.a22*m.a33-m.a23*m.a32) -
		m.a12*(m.a21*m.a33-m.a23*m.a31) +
		m.a13*(m.a21*m.a32-m.a22*m.a31)
}

// LinearSolve solves m * x = rhs for x using Cramer's rule. The second return
// value is false when the determinant is numerically zero, which callers read
// as "ray parallel to plane" or "no intersection".
func (m Matrix3) LinearSolve(rhs Vector3) (Vector3, bool) {
	det := m.Det()
	if math.Abs(det) < solveEpsilon {
		return Vector3{}, false
	}
	dx := Matrix3{
		rhs.X, m.a12, m.a13,
		rhs.Y, m.a22, m.a23,
		rhs.Z, m.a32, m.a33,
	}.Det()
	dy := Matrix3{
		m.a11, rhs.X, m.a13,
		m.a21, rhs.Y, m.a23,
		m.a31, rhs.Z, m.a33,
	}.Det()
	dz := Matrix3{
		m.a11, m.a12, rhs.X,
		m.a21, m.a22, rhs.Y,
		m.a31, m.a32, rhs.Z,
	}.Det()
	return Vector3{X: dx / det, Y: dy / det, Z: dz / det}, true
}
