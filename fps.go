package cubeworld

import (
	"log"
	"time"
)

const fpsWindow = 50

// FPSMonitor keeps a rolling window of the last frame intervals.
type FPSMonitor struct {
	intervals  []float64
	next       int
	filled     bool
	last       time.Time
	hasLast    bool
	frameCount int
}

func NewFPSMonitor() *FPSMonitor {
	return &FPSMonitor{intervals: make([]float64, fpsWindow)}
}

func (m *FPSMonitor) AddFrame(at time.Time) {
	if m.hasLast {
		m.intervals[m.next] = at.Sub(m.last).Seconds()
		m.next++
		if m.next == len(m.intervals) {
			m.next = 0
			m.filled = true
		}
	}
	m.last = at
	m.hasLast = true
	m.frameCount++
}

// FPS returns the mean frame rate over the window, 0 before the first two
// frames.
func (m *FPSMonitor) FPS() float64 {
	count := m.next
	if m.filled {
		count = len(m.intervals)
	}
	if count == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < count; i++ {
		sum += m.intervals[i]
	}
	if sum == 0 {
		return 0
	}
	return float64(count) / sum
}

// LogFPS logs the mean frame rate every 20 frames.
func (m *FPSMonitor) LogFPS() {
	if m.frameCount > 20 {
		m.frameCount = 0
		log.Printf("FPS = %.1f", m.FPS())
	}
}
