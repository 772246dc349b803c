package cmd

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	klatt "github.com/dengopaiv/manatu"
	"github.com/dengopaiv/manatu/internal/metricsx"
	"github.com/dengopaiv/manatu/internal/resilience"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

const streamChunkSamples = 960 // 20ms at 48kHz

// streamSession owns one synthesizer instance for the lifetime of a
// websocket connection: a reader goroutine turns incoming frameMessages
// into FrameManager.Enqueue calls, a render goroutine pulls PCM out the
// other end and writes it back as binary frames.
type streamSession struct {
	id   string
	conn *websocket.Conn

	mu       sync.Mutex
	isActive bool

	fm         *klatt.FrameManager
	gen        *klatt.WaveGenerator
	sampleRate float64

	logger *log.Logger
	done   chan struct{}
}

func newStreamSession(conn *websocket.Conn, sampleRate float64, logger *log.Logger) *streamSession {
	fm := klatt.NewFrameManager()
	gen := klatt.NewWaveGenerator(sampleRate)
	gen.SetFrameManager(fm)

	return &streamSession{
		id:         uuid.NewString(),
		conn:       conn,
		isActive:   true,
		fm:         fm,
		gen:        gen,
		sampleRate: sampleRate,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// handleStream upgrades the request and runs a session to completion. It
// blocks until the connection closes or a protocol error ends the session.
func handleStream(sampleRate int, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "err", err)
			return
		}
		defer conn.Close()

		sess := newStreamSession(conn, float64(sampleRate), logger)
		metricsx.ActiveSessions.Inc()
		defer metricsx.ActiveSessions.Dec()

		sess.logger.Info("stream session opened", "session", sess.id)

		go sess.renderLoop()
		sess.readLoop()

		sess.logger.Info("stream session closed", "session", sess.id)
	}
}

// readLoop parses incoming JSON frame messages and enqueues them. It owns
// the decision to close done, since a read error is the definitive signal
// that the client has gone away.
func (s *streamSession) readLoop() {
	defer close(s.done)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read error", "session", s.id, "err", err)
			}
			s.mu.Lock()
			s.isActive = false
			s.mu.Unlock()
			return
		}

		var msg frameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Error("malformed frame message", "session", s.id, "err", err)
			continue
		}

		req := msg.toFrameRequest(s.sampleRate)
		s.fm.Enqueue(req, msg.Purge)

		kind := "voiced"
		if msg.Null {
			kind = "null"
		}
		metricsx.FramesEnqueued.WithLabelValues(kind).Inc()
		if msg.Purge {
			metricsx.FramesPurged.Inc()
		}
	}
}

// renderLoop pulls PCM out of the generator at a steady cadence and writes
// it to the client as binary websocket frames, stopping when the session
// is torn down or a write fails. While the frame queue is dry it writes
// nothing and keeps polling on each tick.
func (s *streamSession) renderLoop() {
	chunk := make([]int16, streamChunkSamples)
	ticker := time.NewTicker(time.Duration(float64(streamChunkSamples)/s.sampleRate*float64(time.Second)) / 2)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			start := time.Now()
			n := s.gen.Generate(chunk)
			metricsx.ObserveRender(start, n)
			if n == 0 {
				metricsx.QueueUnderflows.Inc()
				continue
			}

			payload := int16sToBytes(chunk[:n])
			s.mu.Lock()
			active := s.isActive
			s.mu.Unlock()
			if !active {
				return
			}
			// A write can fail on a momentary network hiccup without the
			// peer actually being gone; retry those before tearing the
			// session down, the same classify-then-backoff shape
			// internal/resilience.Retry uses for outbound calls.
			err := resilience.Retry(func() error {
				return s.conn.WriteMessage(websocket.BinaryMessage, payload)
			}, resilience.DefaultRetryConfig(), resilience.IsRetryableNetworkError)
			if err != nil {
				s.logger.Warn("websocket write error", "session", s.id, "err", err)
				return
			}
		}
	}
}

func int16sToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[2*i] = byte(s)
		out[2*i+1] = byte(s >> 8)
	}
	return out
}
