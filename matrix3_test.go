package cubeworld

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestMatrix3MulVec(t *testing.T) {
	m := NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	got := m.MulVec(NewVector3(1, 0, -1))
	require.True(t, vectorsAlmostEqual(got, NewVector3(-2, -2, -2)), "got %v", got)

	id := IdentityMatrix3()
	v := NewVector3(3, -4, 5)
	require.Equal(t, v, id.MulVec(v))
}

func TestZRotationMatrix(t *testing.T) {
	tests := []struct {
		theta float64
		in    Vector3
		want  Vector3
	}{
		{0, NewVector3(1, 0, 0), NewVector3(1, 0, 0)},
		{math.Pi / 2, NewVector3(1, 0, 0), NewVector3(0, 1, 0)},
		{math.Pi / 2, NewVector3(0, 1, 0), NewVector3(-1, 0, 0)},
		{-math.Pi / 2, NewVector3(1, 0, 0), NewVector3(0, -1, 0)},
		{math.Pi, NewVector3(1, 2, 3), NewVector3(-1, -2, 3)},
	}
	for _, tt := range tests {
		got := ZRotationMatrix(tt.theta).MulVec(tt.in)
		require.True(t, vectorsAlmostEqual(got, tt.want),
			"Rz(%v) * %v = %v, want %v", tt.theta, tt.in, got, tt.want)
	}
}

func TestAxisRotationMatrixMatchesZRotation(t *testing.T) {
	for _, theta := range []float64{0, 0.3, math.Pi / 2, -1.2, math.Pi} {
		axis := AxisRotationMatrix(UnitZ, theta)
		z := ZRotationMatrix(theta)
		for _, v := range []Vector3{NewVector3(1, 0, 0), NewVector3(0.3, -2, 5)} {
			require.True(t, vectorsAlmostEqual(axis.MulVec(v), z.MulVec(v)),
				"theta=%v v=%v", theta, v)
		}
	}
}

func TestMGLRoundTrip(t *testing.T) {
	m := NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	)
	back := FromMGLMatrix(m.ToMGLMatrix())
	require.Equal(t, m, back)
}

func TestLinearSolve(t *testing.T) {
	m := NewMatrix3(
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	)
	rhs := NewVector3(8, -11, -3)
	x, ok := m.LinearSolve(rhs)
	require.True(t, ok)
	require.True(t, vectorsAlmostEqual(x, NewVector3(2, 3, -1)), "x = %v", x)

	// The solution must satisfy the original system.
	require.True(t, vectorsAlmostEqual(m.MulVec(x), rhs))
}

func TestLinearSolveMatchesMGLInverse(t *testing.T) {
	m := NewMatrix3(
		1, 0.5, -2,
		0, 3, 1,
		4, -1, 0.5,
	)
	rhs := NewVector3(1, -2, 3)

	x, ok := m.LinearSolve(rhs)
	require.True(t, ok)

	inv := m.ToMGLMatrix().Inv()
	want := inv.Mul3x1(mgl64.Vec3{rhs.X, rhs.Y, rhs.Z})
	require.InDelta(t, want.X(), x.X, 1e-9)
	require.InDelta(t, want.Y(), x.Y, 1e-9)
	require.InDelta(t, want.Z(), x.Z, 1e-9)
}

func TestLinearSolveSingular(t *testing.T) {
	// Two identical rows: determinant is zero.
	m := NewMatrix3(
		1, 2, 3,
		1, 2, 3,
		4, 5, 6,
	)
	_, ok := m.LinearSolve(NewVector3(1, 1, 1))
	require.False(t, ok)
}

func TestMatrix3FromRowsColumns(t *testing.T) {
	r1 := NewVector3(1, 2, 3)
	r2 := NewVector3(4, 5, 6)
	r3 := NewVector3(7, 8, 9)
	byRows := Matrix3FromRows(r1, r2, r3)
	byCols := Matrix3FromColumns(
		NewVector3(1, 4, 7),
		NewVector3(2, 5, 8),
		NewVector3(3, 6, 9),
	)
	require.Equal(t, byRows, byCols)
}
