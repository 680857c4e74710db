package cubeworld

// Cube3 is a box defined by its six faces. Storing faces instead of eight
// points is heavier but it is what every consumer of the cube wants.
type Cube3 struct {
	faces [6]*Face3
}

// NewCube3FromFace extrudes a bottom face (normal pointing down) upward by h
// along the z-axis. All faces share the bottom's texture.
func NewCube3FromFace(bottom *Face3, h float64) *Cube3 {
	return newCube3(bottom, h, bottom.Texture(), bottom.Texture())
}

// NewCube3FromFaceTextured is NewCube3FromFace with separate textures for
// the four sides and the top.
func NewCube3FromFaceTextured(bottom *Face3, h float64, side, top Texture) *Cube3 {
	return newCube3(bottom, h, side, top)
}

func newCube3(bottom *Face3, h float64, side, top Texture) *Cube3 {
	p := bottom.Points()
	up := NewVector3(0, 0, h)
	q0 := p[0].Add(up)
	q1 := p[1].Add(up)
	q2 := p[2].Add(up)
	q3 := p[3].Add(up)

	normalized := func(v Vector3) Vector3 {
		v.Normalize()
		return v
	}

	topFace := NewFace3([4]Vector3{q0, q1, q2, q3}, bottom.Normal().Opposite(), top)
	f01 := NewFace3([4]Vector3{q0, q1, p[1], p[0]}, normalized(q1.Sub(q2)), side)
	f12 := NewFace3([4]Vector3{q1, q2, p[2], p[1]}, normalized(q1.Sub(q0)), side)
	f23 := NewFace3([4]Vector3{q2, q3, p[3], p[2]}, normalized(q2.Sub(q1)), side)
	f30 := NewFace3([4]Vector3{q3, q0, p[0], p[3]}, normalized(q0.Sub(q1)), side)

	return &Cube3{faces: [6]*Face3{bottom, topFace, f01, f12, f23, f30}}
}

// NewMinecraftBlock builds a unit soil block with a grassy top, anchored at
// the given corner.
func NewMinecraftBlock(at Vector3) *Cube3 {
	bottom := NewHFace(at, at.Add(NewVector3(1, 0, 0)), SoilSideTexture())
	return NewCube3FromFaceTextured(bottom, 1.0, SoilSideTexture(), SoilTopTexture())
}

func (c *Cube3) VisibleFaces(camera *Camera) []*Face3 {
	var visible []*Face3
	for _, f := range c.faces {
		if f.IsVisibleFrom(camera) {
			visible = append(visible, f)
		}
	}
	return visible
}

func (c *Cube3) AllFaces() []*Face3 {
	return c.faces[:]
}

func (c *Cube3) Rotate(by float64) {
	for _, f := range c.faces {
		f.Rotate(by)
	}
}
