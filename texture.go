package cubeworld

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// Texture provides the color of a face at local coordinates (u, v), both
// expressed in world units along the face sides. Implementations must be
// deterministic: the renderers call ColorAt once per covered pixel per frame.
type Texture interface {
	Width() float64
	Height() float64
	ColorAt(u, v float64) color.RGBA
}

var (
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Purple   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DarkBlue = color.RGBA{R: 0, G: 0, B: 153, A: 255}
	Red      = color.RGBA{R: 255, G: 51, B: 51, A: 255}
	Orange   = color.RGBA{R: 255, G: 153, B: 51, A: 255}
	Green    = color.RGBA{R: 51, G: 255, B: 51, A: 255}
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// wrap maps v into [0, period), also for negative v.
func wrap(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	return m
}

// ColoredTexture is a single flat color.
type ColoredTexture struct {
	color color.RGBA
}

func NewColoredTexture(c color.RGBA) *ColoredTexture {
	return &ColoredTexture{color: c}
}

func (t *ColoredTexture) Width() float64 {
	return math.MaxFloat64
}

func (t *ColoredTexture) Height() float64 {
	return math.MaxFloat64
}

func (t *ColoredTexture) ColorAt(u, v float64) color.RGBA {
	return t.color
}

// CheckerTexture tiles two colors in a 2x2 checkerboard of the given size.
type CheckerTexture struct {
	w, h  float64
	light color.RGBA
	dark  color.RGBA
}

func NewCheckerTexture(w, h float64, light, dark color.RGBA) *CheckerTexture {
	return &CheckerTexture{w: w, h: h, light: light, dark: dark}
}

func (t *CheckerTexture) Width() float64 {
	return t.w
}

func (t *CheckerTexture) Height() float64 {
	return t.h
}

func (t *CheckerTexture) ColorAt(u, v float64) color.RGBA {
	x := wrap(u, t.w)
	y := wrap(v, t.h)
	if (x <= t.w/2) == (y <= t.h/2) {
		return t.light
	}
	return t.dark
}

// PixelTexture is a small grid of colored cells described by a character
// pattern, one character per cell.
type PixelTexture struct {
	rows      int
	cols      int
	pixelSize float64
	pixels    [][]rune
	colors    map[rune]color.RGBA
}

// pixelColors is the palette shared by the pattern presets.
var pixelColors = map[rune]color.RGBA{
	'G': {R: 38, G: 113, B: 41, A: 255},  // dark grass
	'g': {R: 73, G: 166, B: 60, A: 255},  // light grass
	'W': {R: 110, G: 76, B: 38, A: 255},  // dark soil
	'w': {R: 146, G: 104, B: 58, A: 255}, // light soil
	'1': {R: 66, G: 43, B: 21, A: 255},   // wood bark
	'2': {R: 128, G: 92, B: 51, A: 255},  // wood ring
	'3': {R: 155, G: 118, B: 74, A: 255}, // wood body
	'4': {R: 84, G: 84, B: 84, A: 255},   // stone edge
	'5': {R: 122, G: 122, B: 122, A: 255},
	'6': {R: 148, G: 148, B: 148, A: 255},
}

func NewPixelTexture(lines []string, pixelSize float64) *PixelTexture {
	pixels := make([][]rune, len(lines))
	for i, line := range lines {
		pixels[i] = []rune(line)
	}
	return &PixelTexture{
		rows:      len(lines),
		cols:      len(pixels[0]),
		pixelSize: pixelSize,
		pixels:    pixels,
		colors:    pixelColors,
	}
}

// Width spans the columns of the pattern: u walks across a row.
func (t *PixelTexture) Width() float64 {
	return float64(t.cols) * t.pixelSize
}

func (t *PixelTexture) Height() float64 {
	return float64(t.rows) * t.pixelSize
}

func (t *PixelTexture) ColorAt(u, v float64) color.RGBA {
	x := wrap(u, t.Width())
	y := wrap(v, t.Height())
	col := clampInt(int(x/t.pixelSize), 0, t.cols-1)
	row := clampInt(int(y/t.pixelSize), 0, t.rows-1)
	return t.colors[t.pixels[row][col]]
}

// Minecraft-like block patterns.

func SoilSideTexture() *PixelTexture {
	return NewPixelTexture([]string{
		"GGGGGGGGGG",
		"GggggggggG",
		"GggggggggG",
		"WWWWWWWWWW",
		"WwwwwwwwwW",
		"WwwwwwwwwW",
		"WwwwwwwwwW",
		"WwwwwwwwwW",
		"WwwwwwwwwW",
		"WWWWWWWWWW",
	}, 0.1)
}

func SoilTopTexture() *PixelTexture {
	return NewPixelTexture([]string{
		"GGGGGGGGGG",
		"GggggggggG",
		"GggGgggGgG",
		"GggggggggG",
		"GgGggggggG",
		"GggggGgggG",
		"GggGgggggG",
		"GggggggGgG",
		"GggggggggG",
		"GGGGGGGGGG",
	}, 0.1)
}

func WoodTexture() *PixelTexture {
	return NewPixelTexture([]string{
		"1111111111",
		"1333333331",
		"1222222221",
		"1333333331",
		"1333333331",
		"1333333331",
		"1333333331",
		"1222222221",
		"1333333331",
		"1111111111",
	}, 0.1)
}

func WoodFloorTexture() *PixelTexture {
	return NewPixelTexture([]string{
		"3333333333",
		"3333333333",
		"2222222222",
		"3333333333",
		"3333333333",
		"3333333333",
		"3333333333",
		"2222222222",
		"3333333333",
		"3333333333",
	}, 0.3)
}

func StoneTexture() *PixelTexture {
	return NewPixelTexture([]string{
		"4444444444",
		"4656666664",
		"4666665664",
		"4665666664",
		"4666666664",
		"4665666664",
		"4666666564",
		"4656665664",
		"4666666664",
		"4444444444",
	}, 0.1)
}

// PerlinTexture modulates a base color with Perlin noise.
type PerlinTexture struct {
	noise *perlin.Perlin
	w, h  float64
	base  color.RGBA
}

func NewPerlinTexture(w, h float64, base color.RGBA, seed int64) *PerlinTexture {
	return &PerlinTexture{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		w:     w,
		h:     h,
		base:  base,
	}
}

func (t *PerlinTexture) Width() float64 {
	return t.w
}

func (t *PerlinTexture) Height() float64 {
	return t.h
}

func (t *PerlinTexture) ColorAt(u, v float64) color.RGBA {
	x := wrap(u, t.w) / t.w
	y := wrap(v, t.h) / t.h
	// Noise2D is roughly in [-1, 1]; map it to a brightness factor.
	n := t.noise.Noise2D(x, y)
	factor := 0.75 + 0.25*n
	return color.RGBA{
		R: uint8(clampInt(int(float64(t.base.R)*factor), 0, 255)),
		G: uint8(clampInt(int(float64(t.base.G)*factor), 0, 255)),
		B: uint8(clampInt(int(float64(t.base.B)*factor), 0, 255)),
		A: t.base.A,
	}
}
