// Copyright 2020 PingCAP, Inc. Licensed under Apache-2.0.

package selection

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	selectCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kthselect",
			Subsystem: "select",
			Name:      "total",
			Help:      "Counter of selections by result",
		}, []string{"result"})
	partitionRoundsHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kthselect",
			Subsystem: "select",
			Name:      "partition_rounds",
			Help:      "Bucketed histogram of partition rounds needed by one selection",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		})
)

// RegisterMetrics registers metrics.
func RegisterMetrics(registry *prometheus.Registry) {
	registry.MustRegister(selectCounter)
	registry.MustRegister(partitionRoundsHistogram)
}
