package main

import (
	"flag"
	"log"

	"github.com/avermeil/cubeworld"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	mode := flag.String("mode", "painter", "renderer: painter, bsp or ray")
	width := flag.Int("width", 640, "frame width in pixels")
	height := flag.Int("height", 480, "frame height in pixels")
	wireframe := flag.Bool("wireframe", false, "overlay face outlines")
	flag.Parse()

	renderMode := cubeworld.RenderMode(*mode)
	switch renderMode {
	case cubeworld.ModePainter, cubeworld.ModeBSP, cubeworld.ModeRaytracer:
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	game := cubeworld.NewGame(*width, *height, renderMode, *wireframe)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("cubeworld")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
