package cubeworld

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RenderMode selects the renderer the game runs with.
type RenderMode string

const (
	ModePainter   RenderMode = "painter"
	ModeBSP       RenderMode = "bsp"
	ModeRaytracer RenderMode = "ray"
)

var heldKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyS,
	ebiten.KeyA, ebiten.KeyD,
	ebiten.KeyR, ebiten.KeyF,
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
}

// Game drives a World through ebiten's loop: it decodes input, advances the
// camera, renders into a PixelFrame and presents it.
type Game struct {
	world     *World
	frame     *PixelFrame
	mode      RenderMode
	wireframe bool
	fps       *FPSMonitor

	// The scroll wheel sets a target height; a spring eases the camera
	// toward it so zooming does not jump.
	heightSpring harmonica.Spring
	height       float64
	heightVel    float64
	targetHeight float64
}

func NewGame(width, height int, mode RenderMode, wireframe bool) *Game {
	log.Println("initializing world...")
	camera := NewCamera(
		NewPose(NewVector3(-6, 0.5, 1.5), 0),
		float64(width)/2,
		float64(width)/2,
		float64(height)/2,
		float64(width),
		float64(height),
	)
	world := DemoWorld(camera)
	if mode == ModeBSP {
		log.Println("building BSP tree...")
		world.ComputeBSP()
		log.Printf("BSP tree built, %d nodes", world.BSP().Len())
	}

	g := &Game{
		world:        world,
		frame:        NewPixelFrame(width, height),
		mode:         mode,
		wireframe:    wireframe,
		fps:          NewFPSMonitor(),
		heightSpring: harmonica.NewSpring(harmonica.FPS(ebiten.TPS()), 4.0, 0.8),
		height:       1.5,
		targetHeight: 1.5,
	}
	return g
}

// DemoWorld builds the default scene: a stone floor, a small grid of soil
// blocks and one perlin-shaded landmark wall.
func DemoWorld(camera *Camera) *World {
	world := NewWorld(camera)

	// The corners wind counter-clockwise seen from above, so the normal
	// points up, toward the camera.
	floor := NewFace3(
		[4]Vector3{
			NewVector3(-8, -8, 0),
			NewVector3(8, -8, 0),
			NewVector3(8, 8, 0),
			NewVector3(-8, 8, 0),
		},
		UnitZ,
		StoneTexture(),
	)
	world.AddFace(floor)

	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			at := NewVector3(3*float64(i), 3*float64(j), 0)
			world.AddCube(NewMinecraftBlock(at))
		}
	}

	// Landmark wall at the far end, facing back toward the camera.
	wall := NewSimpleFace(7, -3, 2, 6, 2, NewPerlinTexture(2, 2, Orange, 1))
	world.AddFace(wall)

	return world
}

func (g *Game) Update() error {
	for _, key := range heldKeys {
		if ebiten.IsKeyPressed(key) {
			g.world.KeyHeld(key)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.world.KeyPressed(ebiten.KeyB)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.world.LeftMousePressed(x, y)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.targetHeight += dy * 0.5
	}
	g.height, g.heightVel = g.heightSpring.Update(g.height, g.heightVel, g.targetHeight)
	pos := g.world.Camera().Pose().Position()
	pos.Z = g.height
	g.world.Camera().SetPosition(pos)

	g.world.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Clear(g.world.Background())
	if g.mode == ModeRaytracer {
		g.world.DrawRaytracer(g.frame)
	} else {
		g.world.DrawPainter(g.frame)
	}
	screen.WritePixels(g.frame.Bytes())

	if g.wireframe {
		outline := color.RGBA{R: 100, G: 100, B: 100, A: 255}
		for _, face := range g.world.VisibleProjections() {
			DrawFaceOutline(screen, face, 1.0, outline)
		}
	}

	g.fps.AddFrame(time.Now())
	g.fps.LogFPS()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.1f (%s)", g.fps.FPS(), g.mode))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame.Width(), g.frame.Height()
}
