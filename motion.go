package cubeworld

// Camera motion model: inputs accumulate acceleration on the three world
// axes, positions advance by a*dt*dt, and the acceleration decays
// exponentially so the camera slows down when no key is held.

const (
	maxAcceleration   = 50.0
	accelerationDecay = 0.5

	// DefaultAcceleration is the increment applied per input event.
	DefaultAcceleration = 100.0
)

type MotionModel struct {
	ax, ay, az float64
}

func NewMotionModel() *MotionModel {
	return &MotionModel{}
}

// Apply adds a signed acceleration increment on the given axis (0=x, 1=y,
// 2=z), clamped to the maximum.
func (m *MotionModel) Apply(axis int, inc float64) {
	switch axis {
	case 0:
		m.ax = clampFloat(m.ax+inc, -maxAcceleration, maxAcceleration)
	case 1:
		m.ay = clampFloat(m.ay+inc, -maxAcceleration, maxAcceleration)
	case 2:
		m.az = clampFloat(m.az+inc, -maxAcceleration, maxAcceleration)
	}
}

// NewPos returns the position advanced by the current acceleration over dt
// seconds.
func (m *MotionModel) NewPos(pos Vector3, dt float64) Vector3 {
	return pos.Add(NewVector3(m.ax*dt*dt, m.ay*dt*dt, m.az*dt*dt))
}

// Decay halves the acceleration, called once per frame after the position
// update.
func (m *MotionModel) Decay() {
	m.ax *= accelerationDecay
	m.ay *= accelerationDecay
	m.az *= accelerationDecay
}
