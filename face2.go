package cubeworld

import "image/color"

// Face2 is the projection of a Face3 onto the screen. It is recomputed every
// frame and keeps a back-reference to the 3D face and the projecting camera,
// so texture coordinates can be re-derived per pixel. The side lengths of the
// 3D face are cached at construction.
type Face2 struct {
	points [4]Point2
	face3  *Face3
	normA  float64
	normB  float64
	camera *Camera
}

func NewFace2(points [4]Point2, face3 *Face3, camera *Camera) *Face2 {
	p3 := face3.Points()
	a := p3[1].Sub(p3[0])
	b := p3[3].Sub(p3[0])
	return &Face2{
		points: points,
		face3:  face3,
		normA:  a.Norm(),
		normB:  b.Norm(),
		camera: camera,
	}
}

func (f *Face2) Points() [4]Point2 {
	return f.points
}

func (f *Face2) Face3() *Face3 {
	return f.face3
}

// Contains reports whether the screen point lies inside the projected quad,
// using a consistent-sign cross-product test against the four edges.
func (f *Face2) Contains(point Point2) bool {
	leftOf := func(i, j int) bool {
		x1, y1 := f.points[i].X, f.points[i].Y
		x2, y2 := f.points[j].X, f.points[j].Y
		return (x2-x1)*(point.Y-y1)-(point.X-x1)*(y2-y1) >= 0
	}
	c1 := leftOf(0, 1)
	c2 := leftOf(1, 2)
	c3 := leftOf(2, 3)
	c4 := leftOf(3, 0)
	return c1 == c2 && c1 == c3 && c1 == c4
}

// Raytrace shoots the camera ray through pixel (u, v) at the originating 3D
// face. It returns the hit distance in millimeters and the projection
// coordinates; ok is false when the ray misses the face.
func (f *Face2) Raytrace(u, v float64) (uint32, ProjectionCoordinates, bool) {
	direction := f.camera.RayDirection(u, v)
	origin := f.camera.Pose().Position()
	dist, coords, ok := f.face3.LineProjection(origin, direction)
	if !ok || !coords.IsInsideFace() {
		return 0, ProjectionCoordinates{}, false
	}
	return dist, coords, true
}

// ColorAt samples the texture of the originating face at the given
// projection coordinates.
func (f *Face2) ColorAt(coords ProjectionCoordinates) color.RGBA {
	u, v := coords.ToUV(f.normA, f.normB)
	return f.face3.Texture().ColorAt(u, v)
}

func (f *Face2) DistanceTo(camera *Camera) float64 {
	return f.face3.DistanceTo(camera)
}

// boundingBox returns the screen-space bounds of the quad, padded by two
// pixels and clamped to the frame.
func (f *Face2) boundingBox(width, height int) (xmin, ymin, xmax, ymax int) {
	xmin, xmax = int(f.points[0].X), int(f.points[0].X)
	ymin, ymax = int(f.points[0].Y), int(f.points[0].Y)
	for i := 1; i < len(f.points); i++ {
		x, y := int(f.points[i].X), int(f.points[i].Y)
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
		if y < ymin {
			ymin = y
		}
		if y > ymax {
			ymax = y
		}
	}
	xmin = clampInt(xmin-2, 0, width)
	ymin = clampInt(ymin-2, 0, height)
	xmax = clampInt(xmax+2, 0, width)
	ymax = clampInt(ymax+2, 0, height)
	return xmin, ymin, xmax, ymax
}

// Draw rasterizes the quad into the frame: for every pixel of the bounding
// box inside the quad, the camera ray is solved against the 3D face to
// recover exact texture coordinates.
func (f *Face2) Draw(frame *PixelFrame) {
	xmin, ymin, xmax, ymax := f.boundingBox(frame.Width(), frame.Height())
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if !f.Contains(NewPoint2(float64(x), float64(y))) {
				continue
			}
			if _, coords, ok := f.Raytrace(float64(x), float64(y)); ok {
				frame.SetPixel(x, y, f.ColorAt(coords))
			}
		}
	}
}

// EqualsTo reports whether two projections land on the same screen points.
func (f *Face2) EqualsTo(other *Face2) bool {
	for i := range f.points {
		if f.points[i].X != other.points[i].X || f.points[i].Y != other.points[i].Y {
			return false
		}
	}
	return true
}
