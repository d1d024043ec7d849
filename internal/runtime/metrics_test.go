package runtime

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/drblury/ariflow/internal/runtime/events"
	"github.com/drblury/ariflow/internal/runtime/logging"
)

func TestClientMetricsRegisterIsIdempotent(t *testing.T) {
	m := NewClientMetrics(prometheus.NewRegistry())
	if err := m.Register(); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := m.Register(); err != nil {
		t.Fatalf("second Register must be a no-op, got %v", err)
	}
}

func TestClientMetricsCountFrameOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewClientMetrics(reg)
	if err := metrics.Register(); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	conn := newFakeConn(
		frameStep(stateChangeFrame("c1", "Up")),
		frameStep(textFrame(`{"type":"Unrecognized"}`)),
		frameStep(textFrame(`{"type":"PlaybackStarted","application":"app1"}`)),
		closeStep(),
	)

	regn := newRegistry()
	regn.bind(events.TypeChannelStateChange, func(context.Context, events.Event) error {
		return errors.New("boom")
	})

	s := newSession(&fakeConnector{conn: conn}, "ws://test/events", regn, logging.Nop(), metrics)
	if err := s.run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	counts := map[string]float64{
		frameResultDispatched:  1,
		frameResultDecodeError: 1,
		frameResultUnbound:     1,
	}
	for result, want := range counts {
		got := testutil.ToFloat64(metrics.framesTotal.WithLabelValues(result))
		if got != want {
			t.Fatalf("frames_total{result=%q} = %v, want %v", result, got, want)
		}
	}

	handlerErrors := testutil.ToFloat64(metrics.handlerErrorsTotal.WithLabelValues(events.TypeChannelStateChange))
	if handlerErrors != 1 {
		t.Fatalf("handler_errors_total = %v, want 1", handlerErrors)
	}
}
