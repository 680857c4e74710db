package cubeworld

// Face3 is a planar convex quadrilateral in space: the basic renderable unit
// of the engine. The four points must be coplanar and wound consistently with
// the outward normal; this is never validated, the renderer just produces
// wrong images for bad input.
type Face3 struct {
	points  [4]Vector3
	normal  Vector3
	texture Texture
}

func NewFace3(points [4]Vector3, normal Vector3, texture Texture) *Face3 {
	return &Face3{points: points, normal: normal, texture: texture}
}

// NewVFace creates a vertical face of height 2 above the line between p1 and
// p2, with the normal facing 90 degrees clockwise from the line direction.
func NewVFace(p1, p2 Vector3) *Face3 {
	return NewVFaceTextured(p1, p2, NewColoredTexture(Yellow))
}

func NewVFaceTextured(p1, p2 Vector3, texture Texture) *Face3 {
	v := p2.Sub(p1)
	normal := v.Clockwise()
	normal.Normalize()
	up := NewVector3(0, 0, 2)
	return &Face3{
		points:  [4]Vector3{p1, p2, p2.Add(up), p1.Add(up)},
		normal:  normal,
		texture: texture,
	}
}

// NewHFace creates a horizontal square face from a line, extruding it
// anticlockwise. The normal points down.
func NewHFace(p1, p2 Vector3, texture Texture) *Face3 {
	v := p2.Sub(p1)
	rotated := v.Anticlockwise()
	return &Face3{
		points:  [4]Vector3{p1, p2, p2.Add(rotated), p1.Add(rotated)},
		normal:  NewVector3(0, 0, -1),
		texture: texture,
	}
}

// NewSimpleFace creates a w-by-h face at (x, y, z) pointing in the negative
// x direction.
func NewSimpleFace(x, y, z, w, h float64, texture Texture) *Face3 {
	return NewFace3(
		[4]Vector3{
			NewVector3(x, y, z),
			NewVector3(x, y+w, z),
			NewVector3(x, y+w, z-h),
			NewVector3(x, y, z-h),
		},
		NewVector3(-1, 0, 0),
		texture,
	)
}

func (f *Face3) Points() [4]Vector3 {
	return f.points
}

func (f *Face3) Normal() Vector3 {
	return f.normal
}

func (f *Face3) Texture() Texture {
	return f.texture
}

// Clone copies the geometry; the texture is shared.
func (f *Face3) Clone() *Face3 {
	return &Face3{points: f.points, normal: f.normal, texture: f.texture}
}

func (f *Face3) Center() Vector3 {
	return f.points[0].Add(f.points[1]).Add(f.points[2]).Add(f.points[3]).Div(4)
}

// Area of the face, valid for a planar parallelogram.
func (f *Face3) Area() float64 {
	a := f.points[1].Sub(f.points[0])
	b := f.points[3].Sub(f.points[0])
	return a.Cross(b).Norm()
}

// Rotate turns the face around the world z-axis.
func (f *Face3) Rotate(by float64) {
	mat := ZRotationMatrix(by)
	for i := range f.points {
		f.points[i] = mat.MulVec(f.points[i])
	}
	f.normal = mat.MulVec(f.normal)
}

// Projection projects the four corners through the camera.
func (f *Face3) Projection(camera *Camera) *Face2 {
	var points [4]Point2
	for i, p := range f.points {
		points[i] = camera.Project(p)
	}
	return NewFace2(points, f, camera)
}

// IsVisibleFrom reports whether the face is worth drawing: the camera must be
// on the side the normal points to, and at least one corner must project
// inside the frame. The second condition matters: a pure backface test keeps
// faces that are entirely outside the frustum.
func (f *Face3) IsVisibleFrom(camera *Camera) bool {
	if !PointInFrontOf(f, camera.Pose().Position()) {
		return false
	}
	for _, p := range f.points {
		if camera.IsPointVisible(p) {
			return true
		}
	}
	return false
}

// DistanceTo returns the closest distance from the camera to any of the four
// edges of the face. This is the sort key of the painter's algorithm.
func (f *Face3) DistanceTo(camera *Camera) float64 {
	from := camera.Pose().Position()
	d := distanceToSegment(f.points[0], f.points[1], from)
	if d2 := distanceToSegment(f.points[1], f.points[2], from); d2 < d {
		d = d2
	}
	if d3 := distanceToSegment(f.points[2], f.points[3], from); d3 < d {
		d = d3
	}
	if d4 := distanceToSegment(f.points[3], f.points[0], from); d4 < d {
		d = d4
	}
	return d
}

// projectiveBase returns the local basis used for intersections: the two side
// vectors a = P1-P0 and b = P3-P0, and the anchor P0.
func (f *Face3) projectiveBase() (a, b, p Vector3) {
	p = f.points[0]
	return f.points[1].Sub(p), f.points[3].Sub(p), p
}

// LineProjection solves
//
//	origin + t*direction = P0 + alpha*a + beta*b
//
// for (t, alpha, beta). It returns the distance to the intersection in
// millimeters (fixed point, so distances have a total order) and the
// projection coordinates. ok is false when the ray is parallel to the plane
// or the intersection is behind the origin (t < 0).
func (f *Face3) LineProjection(origin, direction Vector3) (uint32, ProjectionCoordinates, bool) {
	a, b, p := f.projectiveBase()
	mat := NewMatrix3(
		a.X, b.X, -direction.X,
		a.Y, b.Y, -direction.Y,
		a.Z, b.Z, -direction.Z,
	)
	solution, ok := mat.LinearSolve(origin.Sub(p))
	if !ok {
		return 0, ProjectionCoordinates{}, false
	}
	t := solution.Z
	if t < 0 {
		return 0, ProjectionCoordinates{}, false
	}
	dist := uint32(t * direction.Norm() * 1000)
	return dist, NewProjectionCoordinates(solution.X, solution.Y), true
}

// LineIntersection intersects the infinite plane of the face with the segment
// from p1 to p2. Intersections beyond the segment's extent are rejected, the
// splitter relies on the returned point lying strictly between the two
// corners. The hit point can still be outside the face boundary.
func (f *Face3) LineIntersection(p1, p2 Vector3) (Vector3, bool) {
	dir := p1.LineTo(p2)
	length := dir.Norm()
	if length == 0 {
		return Vector3{}, false
	}
	dir.Normalize()
	dist, coords, ok := f.LineProjection(p1, dir)
	if !ok || dist > uint32(length*1000) {
		return Vector3{}, false
	}
	a, b, p := f.projectiveBase()
	return p.Add(a.Mul(coords.Alpha)).Add(b.Mul(coords.Beta)), true
}

// distanceToSegment returns the distance between the point `from` and the
// segment [p1, p2].
func distanceToSegment(p1, p2, from Vector3) float64 {
	u := p1.LineTo(from)
	v := p1.LineTo(p2)
	r := u.Dot(v) / (v.Norm() * v.Norm())
	switch {
	case r < 0:
		return u.Norm()
	case r < 1:
		un := u.Norm()
		rv := r * v.Norm()
		return sqrtSafe(un*un - rv*rv)
	default:
		return from.LineTo(p2).Norm()
	}
}

// VisibleFaces implements Object for a standalone face.
func (f *Face3) VisibleFaces(camera *Camera) []*Face3 {
	if f.IsVisibleFrom(camera) {
		return []*Face3{f}
	}
	return nil
}

func (f *Face3) AllFaces() []*Face3 {
	return []*Face3{f}
}
