package cubeworld

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCube3FromFace(t *testing.T) {
	bottom := NewHFace(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewColoredTexture(Green))
	cube := NewCube3FromFace(bottom, 1)

	faces := cube.AllFaces()
	require.Len(t, faces, 6)
	require.Same(t, bottom, faces[0])

	// The top face mirrors the bottom one unit up, normal flipped.
	top := faces[1]
	require.True(t, vectorsAlmostEqual(top.Normal(), NewVector3(0, 0, 1)))
	for _, p := range top.Points() {
		require.InDelta(t, 1.0, p.Z, testEpsilon)
	}

	// Each side normal is a unit vector pointing away from the cube center.
	center := NewVector3(0.5, 0.5, 0.5)
	for _, f := range faces[2:] {
		n := f.Normal()
		require.InDelta(t, 1.0, n.Norm(), testEpsilon)
		require.Greater(t, n.Dot(center.LineTo(f.Center())), 0.0,
			"normal %v of face centered at %v points inward", n, f.Center())
	}
}

func TestCubeSideNormals(t *testing.T) {
	bottom := NewHFace(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewColoredTexture(Green))
	cube := NewCube3FromFace(bottom, 1)
	faces := cube.AllFaces()

	wants := []Vector3{
		NewVector3(0, -1, 0), // y=0 side
		NewVector3(1, 0, 0),  // x=1 side
		NewVector3(0, 1, 0),  // y=1 side
		NewVector3(-1, 0, 0), // x=0 side
	}
	for i, want := range wants {
		require.True(t, vectorsAlmostEqual(faces[2+i].Normal(), want),
			"side %d normal = %v, want %v", i, faces[2+i].Normal(), want)
	}
}

func TestCubeVisibleFaces(t *testing.T) {
	cube := NewMinecraftBlock(NewVector3(0, 0, 0))

	// From the left, at mid height, only the x=0 side faces the camera
	// inside the frame.
	camera := NewCamera(NewPose(NewVector3(-3, 0.5, 0.5), 0), 100, 160, 120, 320, 240)
	visible := cube.VisibleFaces(camera)
	require.Len(t, visible, 1)
	require.True(t, vectorsAlmostEqual(visible[0].Normal(), NewVector3(-1, 0, 0)))

	// From above and in front, the top becomes visible as well.
	camera = NewCamera(NewPose(NewVector3(-3, 0.5, 3), 0), 100, 160, 120, 320, 240)
	visible = cube.VisibleFaces(camera)
	require.Len(t, visible, 2)
}

func TestCubeTextures(t *testing.T) {
	cube := NewMinecraftBlock(NewVector3(0, 0, 0))
	faces := cube.AllFaces()

	_, topIsPixel := faces[1].Texture().(*PixelTexture)
	require.True(t, topIsPixel)
	for _, f := range faces[2:] {
		_, ok := f.Texture().(*PixelTexture)
		require.True(t, ok)
	}
}

func TestCubeRotate(t *testing.T) {
	bottom := NewHFace(NewVector3(1, 0, 0), NewVector3(2, 0, 0), NewColoredTexture(Green))
	cube := NewCube3FromFace(bottom, 1)
	cube.Rotate(3.14159)

	// All faces rotate together: the x=1 side normal flips to roughly -x.
	n := cube.AllFaces()[3].Normal()
	require.InDelta(t, -1.0, n.X, 1e-4)
}
