// Copyright 2026 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package xhr

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the request lifecycle with Prometheus metrics.
//
// Create a Metrics with NewMetrics and install its handler in a
// client:
//
//	m := xhr.NewMetrics(prometheus.DefaultRegisterer)
//	handlers := &xhr.HandlerGroup{}
//	for _, evt := range xhr.Events() {
//		handlers.PushBack(evt, m.Handler())
//	}
//	client := &xhr.Client{Handlers: handlers}
//
// The exported series are:
//
// • xhr_ready_state_transitions_total{state} — count of lifecycle
// transitions, labelled with the state entered;
//
// • xhr_loads_total — requests that reached Done successfully;
//
// • xhr_failures_total — requests that reached Done with a transport
// failure;
//
// • xhr_aborts_total — requests that reached Done via Abort;
//
// • xhr_in_flight_requests — requests opened but not yet Done.
type Metrics struct {
	transitions *prometheus.CounterVec
	loads       prometheus.Counter
	failures    prometheus.Counter
	aborts      prometheus.Counter
	inFlight    prometheus.Gauge
}

// NewMetrics creates a Metrics with its instruments registered on r.
// Use prometheus.DefaultRegisterer to expose the series through the
// default /metrics handler. NewMetrics panics if an instrument with
// the same name is already registered on r.
func NewMetrics(r prometheus.Registerer) *Metrics {
	f := promauto.With(r)
	return &Metrics{
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "xhr_ready_state_transitions_total",
			Help: "Count of request lifecycle transitions by state entered.",
		}, []string{"state"}),
		loads: f.NewCounter(prometheus.CounterOpts{
			Name: "xhr_loads_total",
			Help: "Count of requests that completed successfully.",
		}),
		failures: f.NewCounter(prometheus.CounterOpts{
			Name: "xhr_failures_total",
			Help: "Count of requests that ended in a transport failure.",
		}),
		aborts: f.NewCounter(prometheus.CounterOpts{
			Name: "xhr_aborts_total",
			Help: "Count of requests that were aborted by the caller.",
		}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "xhr_in_flight_requests",
			Help: "Number of requests opened but not yet done.",
		}),
	}
}

// Handler returns an event handler that records the metrics. Install
// the returned handler for every event in Events(); installing it for
// a subset records only that subset's series.
func (m *Metrics) Handler() Handler {
	return HandlerFunc(func(evt Event, r *Request) {
		switch evt {
		case ReadyStateChange:
			state := r.ReadyState()
			m.transitions.WithLabelValues(state.Name()).Inc()
			switch state {
			case Opened:
				m.inFlight.Inc()
			case Done:
				m.inFlight.Dec()
			}
		case Load:
			m.loads.Inc()
		case Failed:
			m.failures.Inc()
		case Aborted:
			m.aborts.Inc()
		}
	})
}
