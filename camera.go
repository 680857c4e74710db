package cubeworld

// Pose is a camera pose: a position in the world and a rotation around the
// z-axis.
type Pose struct {
	position Vector3
	thetaZ   float64
}

func NewPose(position Vector3, thetaZ float64) Pose {
	return Pose{position: position, thetaZ: thetaZ}
}

func (p Pose) Position() Vector3 {
	return p.position
}

func (p Pose) RotationZ() float64 {
	return p.thetaZ
}

func (p *Pose) SetPosition(position Vector3) {
	p.position = position
}

func (p *Pose) ApplyZRot(rot float64) {
	p.thetaZ += rot
}

func (p *Pose) Translate(by Vector3) {
	p.position = p.position.Add(by)
}

// Camera is a pinhole camera: a pose plus the intrinsic parameters f (focal
// length) and (px, py) (principal point). The camera looks along its local
// x-axis; local y and z map to the screen axes.
type Camera struct {
	pose   Pose
	f      float64
	px, py float64
	width  float64
	height float64
}

func NewCamera(pose Pose, f, px, py, width, height float64) *Camera {
	return &Camera{pose: pose, f: f, px: px, py: py, width: width, height: height}
}

func (c *Camera) Pose() Pose {
	return c.pose
}

func (c *Camera) FocalLength() float64 {
	return c.f
}

func (c *Camera) PrincipalX() float64 {
	return c.px
}

func (c *Camera) PrincipalY() float64 {
	return c.py
}

func (c *Camera) SetPosition(position Vector3) {
	c.pose.SetPosition(position)
}

func (c *Camera) ApplyZRot(rot float64) {
	c.pose.ApplyZRot(rot)
}

func (c *Camera) Translate(by Vector3) {
	c.pose.Translate(by)
}

// Project transforms a world point into the camera frame (rotate by -thetaZ,
// translate by -position) and applies the pinhole formula. The depth
// denominator is taken in absolute value so that points behind the camera
// still project to finite coordinates; the in-front flag on the result tells
// them apart.
func (c *Camera) Project(point Vector3) Point2 {
	rot := ZRotationMatrix(-c.pose.thetaZ)
	pc := rot.MulVec(point.Sub(c.pose.position))
	depth := pc.X
	if depth < 0 {
		depth = -depth
	}
	u := c.f*pc.Y/depth + c.px
	v := c.f*pc.Z/depth + c.py
	return NewPoint2WithDirection(u, v, pc.X > 0)
}

// RayDirection is the left inverse of Project's direction component: it
// returns the world-frame direction of the ray through pixel (u, v).
func (c *Camera) RayDirection(u, v float64) Vector3 {
	dir := NewVector3(1, (u-c.px)/c.f, (v-c.py)/c.f)
	return ZRotationMatrix(c.pose.thetaZ).MulVec(dir)
}

// IsPointVisible reports whether the point projects in front of the camera
// and inside the frame bounds.
func (c *Camera) IsPointVisible(point Vector3) bool {
	p := c.Project(point)
	return p.InFront() && p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}
