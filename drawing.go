package cubeworld

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug overlay drawing. The renderers themselves write into a PixelFrame;
// this draws on top of the presented image.

// DrawFaceOutline strokes the edges of a projected face onto the screen.
func DrawFaceOutline(screen *ebiten.Image, face *Face2, strokeWidth float32, clr color.RGBA) {
	points := face.Points()
	for i := range points {
		if !points[i].InFront() {
			return
		}
	}
	for i := range points {
		j := (i + 1) % len(points)
		vector.StrokeLine(screen,
			float32(points[i].X), float32(points[i].Y),
			float32(points[j].X), float32(points[j].Y),
			strokeWidth, clr, false)
	}
}
