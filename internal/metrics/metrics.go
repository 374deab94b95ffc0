// Package metrics exposes Prometheus instrumentation for the ingestion
// pipeline. Collectors register on the default registry and are served by
// the ops endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulsegate_events_received_total",
		Help: "Total decoded gateway events, labelled by event type.",
	}, []string{"event_type"})

	decodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulsegate_decode_failures_total",
		Help: "Total events dropped because decoding failed, labelled by event type.",
	}, []string{"event_type"})

	unknownEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulsegate_unknown_events_total",
		Help: "Total events that fell through to the unknown variant, labelled by wire name.",
	}, []string{"event_type"})

	handlerPanics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulsegate_handler_panics_total",
		Help: "Total handler invocations that panicked, labelled by event type.",
	}, []string{"event_type"})

	handlersInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pulsegate_handlers_in_flight",
		Help: "Handler invocations currently running.",
	})

	heartbeatLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pulsegate_heartbeat_latency_seconds",
		Help:    "Round-trip time between a heartbeat send and its acknowledgement.",
		Buckets: prometheus.DefBuckets,
	})
)

// Collector implements the gateway dispatch telemetry interface on top of
// the Prometheus collectors above.
type Collector struct{}

// NewCollector returns the process-wide collector.
func NewCollector() *Collector {
	return &Collector{}
}

// EventReceived counts one successfully decoded event.
func (*Collector) EventReceived(eventType string) {
	eventsReceived.WithLabelValues(eventType).Inc()
}

// DecodeFailed counts one dropped event.
func (*Collector) DecodeFailed(eventType string) {
	decodeFailures.WithLabelValues(eventType).Inc()
}

// UnknownEvent counts one event outside the recognized set.
func (*Collector) UnknownEvent(eventType string) {
	unknownEvents.WithLabelValues(eventType).Inc()
}

// HandlerPanicked counts one contained handler fault.
func (*Collector) HandlerPanicked(eventType string) {
	handlerPanics.WithLabelValues(eventType).Inc()
}

// HandlerStarted moves the in-flight gauge up.
func (*Collector) HandlerStarted() {
	handlersInFlight.Inc()
}

// HandlerFinished moves the in-flight gauge down.
func (*Collector) HandlerFinished() {
	handlersInFlight.Dec()
}

// HeartbeatAcked observes one heartbeat round trip.
func (*Collector) HeartbeatAcked(latency time.Duration) {
	heartbeatLatency.Observe(latency.Seconds())
}
