package core

import "github.com/spaghettifunk/transformation/engine/containers"

const AVG_COUNT int = 30

// Metrics keeps a rolling average of frame times and a frames-per-second
// figure refreshed once per accumulated second.
type Metrics struct {
	msTimes            *containers.RingQueue[float64]
	msAvg              float64
	frames             int32
	totalFrames        uint64
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		msTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

// Update records a frame that took frameElapsedTime seconds.
func (m *Metrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	if m.msTimes.IsFull() {
		_, _ = m.msTimes.Dequeue()
	}
	_ = m.msTimes.Enqueue(frameMS)

	var sum float64
	m.msTimes.Each(func(v float64) { sum += v })
	m.msAvg = sum / float64(m.msTimes.Len())

	// Count all frames.
	m.frames++
	m.totalFrames++

	// Calculate frames per second.
	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

// FrameTime is the average frame time in milliseconds over the last AVG_COUNT frames.
func (m *Metrics) FrameTime() float64 {
	return m.msAvg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.msAvg
}

func (m *Metrics) TotalFrames() uint64 {
	return m.totalFrames
}
