package cubeworld

import "fmt"

// PointInFrontOf reports whether the point lies on the side of the face's
// plane that its outward normal points to. This single definition of "in
// front" is shared by the splitter, the BSP traversal and backface culling; a
// mismatch between any two of them silently inverts the occlusion order.
func PointInFrontOf(face *Face3, point Vector3) bool {
	return face.Normal().Dot(face.Center().LineTo(point)) > 0
}

// SplitFace cuts a convex quadrilateral against the plane of another face.
// It returns the fragment in front of the plane and the fragment behind it;
// either may be nil when the input lies entirely on one side. Fragments
// inherit the input's normal and texture, and their areas sum to the input's
// area.
//
// Only the fully-front, fully-behind and two-two straddle configurations are
// supported: anything else means the input was non-convex or non-coplanar,
// which is a broken precondition, so the function panics rather than build a
// silently wrong tree.
func SplitFace(toSplit, plane *Face3) (*Face3, *Face3) {
	points := toSplit.Points()
	var fronts [4]bool
	n := 0
	for i, p := range points {
		fronts[i] = PointInFrontOf(plane, p)
		if fronts[i] {
			n++
		}
	}

	switch n {
	case 0:
		return nil, toSplit.Clone()
	case 4:
		return toSplit.Clone(), nil
	case 2:
		// The polygon straddles the plane. Two adjacent corners are on each
		// side; find which pair of edges is crossed.
		var f1, f2 *Face3
		if fronts[0] != fronts[1] {
			// Cut edges (0-1) and (2-3): corners {0,3} are on one side,
			// {1,2} on the other.
			x := mustIntersect(plane, points[0], points[1])
			y := mustIntersect(plane, points[2], points[3])
			f1 = NewFace3([4]Vector3{points[0], x, y, points[3]}, toSplit.Normal(), toSplit.Texture())
			f2 = NewFace3([4]Vector3{x, points[1], points[2], y}, toSplit.Normal(), toSplit.Texture())
		} else {
			// Cut edges (1-2) and (3-0): corners {0,1} against {2,3}.
			x := mustIntersect(plane, points[1], points[2])
			y := mustIntersect(plane, points[3], points[0])
			f1 = NewFace3([4]Vector3{points[0], points[1], x, y}, toSplit.Normal(), toSplit.Texture())
			f2 = NewFace3([4]Vector3{y, x, points[2], points[3]}, toSplit.Normal(), toSplit.Texture())
		}
		// f1 is the fragment on the side of corner 0.
		if fronts[0] {
			return f1, f2
		}
		return f2, f1
	}
	panic(fmt.Sprintf("split: unsupported configuration with %d corners in front", n))
}

func mustIntersect(plane *Face3, p1, p2 Vector3) Vector3 {
	p, ok := plane.LineIntersection(p1, p2)
	if !ok {
		panic("split: straddling edge does not intersect the plane")
	}
	return p
}
