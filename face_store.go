package cubeworld

import "sort"

// FaceStore is a small helper holding the faces collected for one frame.
type FaceStore struct {
	faces []*Face3
}

func NewFaceStore() *FaceStore {
	return &FaceStore{faces: make([]*Face3, 0, 16)}
}

func (fs *FaceStore) AddFace(f *Face3) {
	fs.faces = append(fs.faces, f)
}

func (fs *FaceStore) Face(i int) *Face3 {
	return fs.faces[i]
}

func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

func (fs *FaceStore) Faces() []*Face3 {
	return fs.faces
}

// SortFarthestFirst orders the faces so that faces farther from the camera
// come first, the order the painter's algorithm needs.
func (fs *FaceStore) SortFarthestFirst(camera *Camera) {
	sort.SliceStable(fs.faces, func(i, j int) bool {
		return fs.faces[i].DistanceTo(camera) > fs.faces[j].DistanceTo(camera)
	})
}
