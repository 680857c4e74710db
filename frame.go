package cubeworld

import "image/color"

// FrameSink receives the faces to draw, in drawing order. It is the only
// interface through which the renderers emit pixels; the sink owns the
// buffer and the pixel format.
type FrameSink interface {
	DrawOneFace(face *Face2)
}

// PixelFrame is an RGBA pixel buffer, 4 bytes per pixel, rows top to bottom.
// The layout matches what ebiten's WritePixels expects.
type PixelFrame struct {
	width  int
	height int
	buf    []byte
}

func NewPixelFrame(width, height int) *PixelFrame {
	return &PixelFrame{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*4),
	}
}

func (p *PixelFrame) Width() int {
	return p.width
}

func (p *PixelFrame) Height() int {
	return p.height
}

func (p *PixelFrame) Bytes() []byte {
	return p.buf
}

func (p *PixelFrame) Clear(c color.RGBA) {
	for i := 0; i < len(p.buf); i += 4 {
		p.buf[i] = c.R
		p.buf[i+1] = c.G
		p.buf[i+2] = c.B
		p.buf[i+3] = c.A
	}
}

func (p *PixelFrame) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := 4 * (x + y*p.width)
	p.buf[i] = c.R
	p.buf[i+1] = c.G
	p.buf[i+2] = c.B
	p.buf[i+3] = c.A
}

// At returns the pixel color, mainly for tests.
func (p *PixelFrame) At(x, y int) color.RGBA {
	i := 4 * (x + y*p.width)
	return color.RGBA{R: p.buf[i], G: p.buf[i+1], B: p.buf[i+2], A: p.buf[i+3]}
}

// DrawOneFace implements FrameSink by rasterizing the face into the buffer.
func (p *PixelFrame) DrawOneFace(face *Face2) {
	face.Draw(p)
}
