package klatt

import (
	"sync"

	"github.com/dengopaiv/manatu/internal/dsp"
)

// FrameManager queues target frames and produces one interpolated frame per
// sample: each request fades in from whatever frame preceded it over
// FadeSamples, then sustains until MinSamples elapses, at which point the
// next queued request (if any) is promoted and the cycle repeats (§4.1).
//
// FrameManager is safe for concurrent use: Enqueue is typically called from
// a caller thread scheduling speech, while CurrentFrame is pulled once per
// sample from the audio render path.
type FrameManager struct {
	mu sync.Mutex

	queue []*FrameRequest
	oldReq *FrameRequest
	newReq *FrameRequest

	cur           Frame
	curIsNull     bool
	sampleCounter int
	lastUserIndex int
}

// NewFrameManager returns a FrameManager that reports no current frame until
// the first request is enqueued.
func NewFrameManager() *FrameManager {
	return &FrameManager{
		oldReq:        &FrameRequest{IsNull: true, MinSamples: 0, FadeSamples: 1, Frame: silentFrame()},
		curIsNull:     true,
		lastUserIndex: -1,
	}
}

// Enqueue schedules req to play once every request ahead of it in the queue
// has run its course. If purge is true, the pending queue (and any
// in-progress fade) is discarded first and req takes over immediately,
// fading in from the frame currently sounding.
func (m *FrameManager) Enqueue(req *FrameRequest, purge bool) {
	req.computePitchIncrements()

	m.mu.Lock()
	defer m.mu.Unlock()

	if purge {
		m.queue = m.queue[:0]
		m.sampleCounter = m.oldReq.MinSamples
		if m.newReq != nil {
			m.oldReq.IsNull = m.newReq.IsNull
			m.oldReq.Frame = m.cur
			m.newReq = nil
		}
	}
	m.queue = append(m.queue, req)
}

// LastUserIndex returns the UserIndex of the most recently promoted non-null
// request whose UserIndex is not -1, or -1 if none has yet.
func (m *FrameManager) LastUserIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastUserIndex
}

// CurrentFrame advances the manager by one sample and returns the frame to
// render it with. ok is false while the queue has run dry and no successor
// frame is pending, meaning the stream has ended until more requests are
// enqueued.
func (m *FrameManager) CurrentFrame() (frame Frame, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advance()
	return m.cur, !m.curIsNull
}

func (m *FrameManager) advance() {
	m.sampleCounter++

	switch {
	case m.newReq != nil:
		if m.sampleCounter > m.newReq.FadeSamples {
			m.oldReq = m.newReq
			m.newReq = nil
			return
		}
		ratio := float64(m.sampleCounter) / float64(m.newReq.FadeSamples)
		fadeFrame(&m.oldReq.Frame, &m.newReq.Frame, dsp.Smoothstep(ratio), &m.cur)

	case m.sampleCounter > m.oldReq.MinSamples:
		m.promote()

	default:
		m.sustainPitch()
	}
}

// promote pulls the next request off the queue, applying the null-frame and
// silence-recovery carry-through rules from §4.1, and starts its fade.
func (m *FrameManager) promote() {
	if len(m.queue) == 0 {
		m.curIsNull = true
		return
	}

	m.curIsNull = false
	next := m.queue[0]
	m.queue = m.queue[1:]

	switch {
	case next.IsNull:
		next.Frame = m.oldReq.Frame
		next.Frame.PreFormantGain = 0
		next.Frame.F0 = m.cur.F0
		next.pitchInc = 0
	case m.oldReq.IsNull:
		m.oldReq.Frame = next.Frame
		m.oldReq.Frame.PreFormantGain = 0
	}

	m.newReq = next
	if !next.IsNull && next.UserIndex != -1 {
		m.lastUserIndex = next.UserIndex
	}
	m.sampleCounter = 0
	next.Frame.F0 += next.pitchInc * float64(next.FadeSamples)
}

// sustainPitch advances F0 by the current request's glide increment while
// no fade is in progress, switching to the second contour leg at the
// request's midpoint.
func (m *FrameManager) sustainPitch() {
	if m.oldReq.hasContour && m.sampleCounter > m.oldReq.MinSamples/2 {
		m.cur.F0 += m.oldReq.pitchInc2
	} else {
		m.cur.F0 += m.oldReq.pitchInc
	}
	m.oldReq.Frame.F0 = m.cur.F0
}
