package cubeworld

// BSPNode is one node of a binary space partitioning tree. The node's
// splitting plane is its first face; every other face of the input has been
// split into fragments strictly in front of or behind that plane, stored in
// the two child subtrees. The tree is a strict single-owner binary tree: no
// sharing, no cycles.
//
// Once built, a tree is immutable. Adding geometry means rebuilding from
// scratch: the splitter assumes exclusive ownership of a frozen face list
// during a build pass.
type BSPNode struct {
	faces   []*Face3
	inFront *BSPNode
	behind  *BSPNode

	// toProcess is only used while the tree is being built.
	toProcess []*Face3
}

// BuildBSP builds a tree from the given faces. The pivot of each node is
// always the first remaining face; this makes no attempt to balance the
// tree. Returns nil for an empty list.
func BuildBSP(faces []*Face3) *BSPNode {
	if len(faces) == 0 {
		return nil
	}
	root := &BSPNode{toProcess: faces}
	root.build()
	return root
}

func (n *BSPNode) build() {
	n.faces = append(n.faces, n.toProcess[0])

	var inFronts, behinds []*Face3
	for _, f := range n.toProcess[1:] {
		front, behind := SplitFace(f, n.Plane())
		if front == nil && behind == nil {
			panic("bsp: split produced no fragment")
		}
		if front != nil {
			inFronts = append(inFronts, front)
		}
		if behind != nil {
			behinds = append(behinds, behind)
		}
	}
	n.toProcess = nil

	if len(inFronts) > 0 {
		n.inFront = &BSPNode{toProcess: inFronts}
		n.inFront.build()
	}
	if len(behinds) > 0 {
		n.behind = &BSPNode{toProcess: behinds}
		n.behind.build()
	}
}

// Plane returns the face acting as this node's splitting plane.
func (n *BSPNode) Plane() *Face3 {
	return n.faces[0]
}

func (n *BSPNode) InFront() *BSPNode {
	return n.inFront
}

func (n *BSPNode) Behind() *BSPNode {
	return n.behind
}

// Len returns the number of nodes in the subtree rooted here.
func (n *BSPNode) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.inFront.Len() + n.behind.Len()
}

// PainterTraversal walks the tree back to front relative to the camera and
// hands the faces to the sink in that order. Overwrite compositing then
// resolves occlusion without a per-frame sort or a depth buffer.
//
// Faces coplanar with a splitting plane get no special handling.
func (n *BSPNode) PainterTraversal(camera *Camera, sink FrameSink) {
	if n == nil {
		return
	}
	if PointInFrontOf(n.Plane(), camera.Pose().Position()) {
		n.behind.PainterTraversal(camera, sink)
		n.render(camera, sink)
		n.inFront.PainterTraversal(camera, sink)
	} else {
		n.inFront.PainterTraversal(camera, sink)
		n.render(camera, sink)
		n.behind.PainterTraversal(camera, sink)
	}
}

func (n *BSPNode) render(camera *Camera, sink FrameSink) {
	face := n.Plane()
	if face.IsVisibleFrom(camera) {
		sink.DrawOneFace(face.Projection(camera))
	}
}
