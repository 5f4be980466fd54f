// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xmidt-org/greeter/xmetrics"
)

const (
	RequestsTotal       = "requests_total"
	InFlightRequests    = "in_flight_requests"
	RequestDuration     = "request_duration_seconds"
	ActiveConnections   = "active_connections"
	RejectedConnections = "rejected_connections"
)

// Metrics returns the metrics a server records.  These must be supplied to the xmetrics.Registry
// passed to NewInstrumentChain and used for Options.Active and Options.Rejected.
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       RequestsTotal,
			Type:       xmetrics.CounterType,
			Help:       "A counter for requests to the handler",
			LabelNames: []string{"code", "method"},
		},
		{
			Name: InFlightRequests,
			Type: xmetrics.GaugeType,
			Help: "A gauge of requests currently being served by the handler.",
		},
		{
			Name:    RequestDuration,
			Type:    xmetrics.HistogramType,
			Help:    "A histogram of latencies for requests.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1},
		},
		{
			Name:       ActiveConnections,
			Type:       xmetrics.GaugeType,
			Help:       "The number of active connections associated with a listener",
			LabelNames: []string{"server"},
		},
		{
			Name:       RejectedConnections,
			Type:       xmetrics.CounterType,
			Help:       "The total number of connections rejected due to exceeding the connection limit",
			LabelNames: []string{"server"},
		},
	}
}

// NewInstrumentChain produces the request instrumentation for a server's handler, using the
// metrics described by Metrics.
func NewInstrumentChain(r xmetrics.PrometheusProvider) alice.Chain {
	var (
		inFlight = r.NewGaugeVec(InFlightRequests).WithLabelValues()
		duration = r.NewHistogramVec(RequestDuration)
		requests = r.NewCounterVec(RequestsTotal)
	)

	return alice.New(
		func(next http.Handler) http.Handler {
			return promhttp.InstrumentHandlerInFlight(inFlight, next)
		},
		func(next http.Handler) http.Handler {
			return promhttp.InstrumentHandlerDuration(duration, next)
		},
		func(next http.Handler) http.Handler {
			return promhttp.InstrumentHandlerCounter(requests, next)
		},
	)
}

// WithConnectionMetrics sets Options.Active and Options.Rejected from a registry supplied with Metrics
func WithConnectionMetrics(o Options, r xmetrics.Registry) Options {
	name := o.Name
	if len(name) == 0 {
		name = DefaultServerName
	}

	o.Active = r.NewGauge(ActiveConnections).With("server", name)
	o.Rejected = r.NewCounter(RejectedConnections).With("server", name)
	return o
}
