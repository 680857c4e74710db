package cubeworld

import "testing"

func TestFaceStore(t *testing.T) {
	store := NewFaceStore()
	if store.FaceCount() != 0 {
		t.Fatalf("new store has %d faces", store.FaceCount())
	}

	near := NewVFace(NewVector3(0, 1, 0), NewVector3(1, 1, 0))
	mid := NewVFace(NewVector3(0, 3, 0), NewVector3(1, 3, 0))
	far := NewVFace(NewVector3(0, 9, 0), NewVector3(1, 9, 0))
	store.AddFace(near)
	store.AddFace(far)
	store.AddFace(mid)
	if store.FaceCount() != 3 {
		t.Fatalf("FaceCount = %d", store.FaceCount())
	}

	camera := NewCamera(NewPose(NewVector3(0.5, 0, 0), 0), 100, 100, 100, 320, 240)
	store.SortFarthestFirst(camera)

	want := []*Face3{far, mid, near}
	for i, f := range want {
		if store.Face(i) != f {
			t.Errorf("position %d: got face at distance %v", i, store.Face(i).DistanceTo(camera))
		}
	}
}
