// Copyright 2020 PingCAP, Inc. Licensed under Apache-2.0.

package intreader

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	readValuesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kthselect",
			Subsystem: "reader",
			Name:      "values_total",
			Help:      "Counter of integers read from input",
		})
	skippedTokensCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kthselect",
			Subsystem: "reader",
			Name:      "skipped_tokens_total",
			Help:      "Counter of malformed input tokens that were skipped",
		})
)

// RegisterMetrics registers metrics.
func RegisterMetrics(registry *prometheus.Registry) {
	registry.MustRegister(readValuesCounter)
	registry.MustRegister(skippedTokensCounter)
}
