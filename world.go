package cubeworld

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Object is a drawable element of the world, exposing its constituent faces.
type Object interface {
	VisibleFaces(camera *Camera) []*Face3
	AllFaces() []*Face3
	Rotate(by float64)
}

// World owns the scene: an insertion-ordered list of objects, the camera, an
// optional BSP tree over the flattened faces, and the motion model driving
// the camera between frames. Everything is single-threaded; the scene is
// mutated only between frames.
type World struct {
	objects    []Object
	camera     *Camera
	bsp        *BSPNode
	motion     *MotionModel
	background color.RGBA
}

func NewWorld(camera *Camera) *World {
	return &World{
		camera:     camera,
		motion:     NewMotionModel(),
		background: color.RGBA{R: 0x48, G: 0xb2, B: 0xe8, A: 0xff},
	}
}

func (w *World) AddObject(o Object) {
	w.objects = append(w.objects, o)
}

func (w *World) AddFace(f *Face3) {
	w.AddObject(f)
}

func (w *World) AddCube(c *Cube3) {
	w.AddObject(c)
}

func (w *World) Camera() *Camera {
	return w.camera
}

func (w *World) SetCameraPosition(position Vector3) {
	w.camera.SetPosition(position)
}

func (w *World) SetCameraRotation(thetaZ float64) {
	w.camera.ApplyZRot(thetaZ - w.camera.Pose().RotationZ())
}

func (w *World) SetBackground(c color.RGBA) {
	w.background = c
}

func (w *World) Background() color.RGBA {
	return w.background
}

func (w *World) BSP() *BSPNode {
	return w.bsp
}

// ComputeBSP rebuilds the tree from scratch over every face of the scene.
// There is no incremental insertion: geometry added after a build is only
// picked up by the next ComputeBSP call.
func (w *World) ComputeBSP() {
	store := NewFaceStore()
	for _, o := range w.objects {
		for _, f := range o.AllFaces() {
			store.AddFace(f)
		}
	}
	w.bsp = BuildBSP(store.Faces())
}

func (w *World) visibleFaces() *FaceStore {
	store := NewFaceStore()
	for _, o := range w.objects {
		for _, f := range o.VisibleFaces(w.camera) {
			store.AddFace(f)
		}
	}
	return store
}

// DrawPainter renders the scene back to front into the sink. With a BSP tree
// the draw order comes from the tree traversal; without one the visible
// faces are depth-sorted every frame.
func (w *World) DrawPainter(sink FrameSink) {
	if w.bsp != nil {
		w.bsp.PainterTraversal(w.camera, sink)
		return
	}
	store := w.visibleFaces()
	store.SortFarthestFirst(w.camera)
	for _, f := range store.Faces() {
		sink.DrawOneFace(f.Projection(w.camera))
	}
}

// VisibleProjections projects every visible face, in insertion order.
func (w *World) VisibleProjections() []*Face2 {
	var faces []*Face2
	for _, f := range w.visibleFaces().Faces() {
		faces = append(faces, f.Projection(w.camera))
	}
	return faces
}

// DrawRaytracer renders the whole frame by shooting one ray per pixel at
// every visible face, keeping the closest hit. Ties go to the earlier face.
// Pixels with no hit get the background color.
func (w *World) DrawRaytracer(frame *PixelFrame) {
	faces := w.VisibleProjections()
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			best := uint32(math.MaxUint32)
			found := false
			var c color.RGBA
			for _, f := range faces {
				dist, coords, ok := f.Raytrace(float64(x), float64(y))
				if ok && dist < best {
					best = dist
					found = true
					c = f.ColorAt(coords)
				}
			}
			if found {
				frame.SetPixel(x, y, c)
			} else {
				frame.SetPixel(x, y, w.background)
			}
		}
	}
}

// Input bridge. The event layer decodes the device events and calls these;
// the world translates them into motion model and camera updates.

const rotationStep = math.Pi / 60

func (w *World) KeyPressed(key ebiten.Key) {
	switch key {
	case ebiten.KeyB:
		w.ComputeBSP()
	}
}

func (w *World) KeyHeld(key ebiten.Key) {
	switch key {
	case ebiten.KeyW:
		w.motion.Apply(0, DefaultAcceleration)
	case ebiten.KeyS:
		w.motion.Apply(0, -DefaultAcceleration)
	case ebiten.KeyA:
		w.motion.Apply(1, -DefaultAcceleration)
	case ebiten.KeyD:
		w.motion.Apply(1, DefaultAcceleration)
	case ebiten.KeyR:
		w.motion.Apply(2, DefaultAcceleration)
	case ebiten.KeyF:
		w.motion.Apply(2, -DefaultAcceleration)
	case ebiten.KeyArrowLeft:
		w.camera.ApplyZRot(rotationStep)
	case ebiten.KeyArrowRight:
		w.camera.ApplyZRot(-rotationStep)
	}
}

// LeftMousePressed turns the camera so the clicked column moves to the
// center of the frame.
func (w *World) LeftMousePressed(x, y int) {
	w.camera.ApplyZRot(math.Atan2(float64(x)-w.camera.PrincipalX(), w.camera.FocalLength()))
}

// Update advances the camera by the motion model and lets the acceleration
// decay.
func (w *World) Update(dt float64) {
	w.camera.SetPosition(w.motion.NewPos(w.camera.Pose().Position(), dt))
	w.motion.Decay()
}
