// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks requests by method.
type Metrics struct {
	calls   *prometheus.CounterVec
	errors  *prometheus.CounterVec
	latency metric.Averager
}

func NewMetrics(r prometheus.Registerer) (*Metrics, error) {
	latency, err := metric.NewAverager(
		"",
		"rpc_latency",
		"time spent waiting for rpc responses",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rpc",
			Name:      "calls",
			Help:      "number of rpc calls issued",
		}, []string{"method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rpc",
			Name:      "errors",
			Help:      "number of rpc calls that failed",
		}, []string{"method"}),
		latency: latency,
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.calls),
		r.Register(m.errors),
	)
	return m, errs.Err
}

func (m *Metrics) observe(method string, d time.Duration, err error) {
	m.calls.WithLabelValues(method).Inc()
	if err != nil {
		m.errors.WithLabelValues(method).Inc()
	}
	m.latency.Observe(float64(d))
}
