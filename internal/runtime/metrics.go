package runtime

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Frame outcome labels for the frames counter.
const (
	frameResultDispatched  = "dispatched"
	frameResultUnbound     = "unbound"
	frameResultDecodeError = "decode_error"
	frameResultBinary      = "binary"
)

// ClientMetrics tracks event stream statistics for one client. Collection is
// always on; Register exposes the collectors through Prometheus.
type ClientMetrics struct {
	framesTotal        *prometheus.CounterVec
	handlerErrorsTotal *prometheus.CounterVec
	dispatchSeconds    *prometheus.HistogramVec

	mu         sync.Mutex
	registerer prometheus.Registerer
	registered bool
}

// NewClientMetrics creates the collectors. A nil registerer falls back to
// prometheus.DefaultRegisterer.
func NewClientMetrics(registerer prometheus.Registerer) *ClientMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &ClientMetrics{
		framesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ariflow",
			Subsystem: "session",
			Name:      "frames_total",
			Help:      "Inbound event stream frames by outcome.",
		}, []string{"result"}),
		handlerErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ariflow",
			Subsystem: "session",
			Name:      "handler_errors_total",
			Help:      "Errors returned by application event handlers.",
		}, []string{"event_type"}),
		dispatchSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ariflow",
			Subsystem: "session",
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent inside handler invocations per event.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event_type"}),
		registerer: registerer,
	}
}

// Register registers the collectors exactly once. Safe to call repeatedly.
func (m *ClientMetrics) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}
	for _, collector := range []prometheus.Collector{m.framesTotal, m.handlerErrorsTotal, m.dispatchSeconds} {
		if err := m.registerer.Register(collector); err != nil {
			return err
		}
	}
	m.registered = true
	return nil
}

func (m *ClientMetrics) observeFrame(result string) {
	m.framesTotal.WithLabelValues(result).Inc()
}

func (m *ClientMetrics) observeHandlerError(eventType string) {
	m.handlerErrorsTotal.WithLabelValues(eventType).Inc()
}

func (m *ClientMetrics) observeDispatch(eventType string, seconds float64) {
	m.dispatchSeconds.WithLabelValues(eventType).Observe(seconds)
}
