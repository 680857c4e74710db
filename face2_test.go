package cubeworld

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// frontalFace spans the x=0 plane, two units wide and high, facing -x.
func frontalFace(texture Texture) *Face3 {
	return NewFace3(
		[4]Vector3{
			NewVector3(0, -1, -1),
			NewVector3(0, 1, -1),
			NewVector3(0, 1, 1),
			NewVector3(0, -1, 1),
		},
		NewVector3(-1, 0, 0),
		texture,
	)
}

func TestFace2Contains(t *testing.T) {
	dummy := NewVFace(NewVector3(0, 0, 0), NewVector3(1, 0, 0))
	quad := NewFace2([4]Point2{
		NewPoint2(160, 20),
		NewPoint2(160, 53.3),
		NewPoint2(193.3, 53.3),
		NewPoint2(210, 20),
	}, dummy, nil)

	tests := []struct {
		name  string
		point Point2
		want  bool
	}{
		{"near a corner", NewPoint2(161, 21), true},
		{"middle of the quad", NewPoint2(180, 35), true},
		{"outside left", NewPoint2(100, 100), false},
		{"just below the bottom edge", NewPoint2(161, 19), false},
		{"far away", NewPoint2(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quad.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.point.X, tt.point.Y, got, tt.want)
			}
		})
	}
}

func TestFace2Raytrace(t *testing.T) {
	camera := testCamera()
	face := frontalFace(NewColoredTexture(Red)).Projection(camera)

	// The central pixel hits the plane two units away.
	d1, coords, ok := face.Raytrace(100, 100)
	require.True(t, ok)
	require.Equal(t, uint32(2000), d1)
	require.InDelta(t, 0.5, coords.Alpha, testEpsilon)
	require.InDelta(t, 0.5, coords.Beta, testEpsilon)

	// Pixels symmetric around the principal point hit at the same, larger
	// distance.
	d2, _, ok := face.Raytrace(50, 100)
	require.True(t, ok)
	d3, _, ok := face.Raytrace(150, 100)
	require.True(t, ok)
	require.Equal(t, d2, d3)
	require.Greater(t, d2, d1)

	// Outside the projected quad the ray misses the face.
	_, _, ok = face.Raytrace(10, 10)
	require.False(t, ok)
}

func TestFace2ColorAt(t *testing.T) {
	camera := testCamera()
	texture := NewCheckerTexture(2, 2, White, Black)
	face := frontalFace(texture).Projection(camera)

	_, coords, ok := face.Raytrace(60, 60)
	require.True(t, ok)
	require.Equal(t, White, face.ColorAt(coords))

	_, coords, ok = face.Raytrace(140, 60)
	require.True(t, ok)
	require.Equal(t, Black, face.ColorAt(coords))
}

func TestFace2Draw(t *testing.T) {
	camera := NewCamera(NewPose(NewVector3(-2, 0, 0), 0), 100, 100, 100, 200, 200)
	face := frontalFace(NewColoredTexture(Red)).Projection(camera)

	frame := NewPixelFrame(200, 200)
	frame.Clear(Black)
	face.Draw(frame)

	// The quad projects to [50,150]x[50,150].
	require.Equal(t, Red, frame.At(100, 100))
	require.Equal(t, Red, frame.At(60, 140))
	require.Equal(t, Black, frame.At(10, 10))
	require.Equal(t, Black, frame.At(190, 100))
}

func TestFace2EqualsTo(t *testing.T) {
	camera := testCamera()
	face := frontalFace(NewColoredTexture(Red))

	a := face.Projection(camera)
	b := face.Projection(camera)
	require.True(t, a.EqualsTo(b))

	camera.Translate(NewVector3(0, 0.5, 0))
	c := face.Projection(camera)
	require.False(t, a.EqualsTo(c))
}
