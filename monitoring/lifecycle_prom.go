// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AutoCloseSweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "parkwatch_autoclose_sweep_duration_seconds",
	Help:    "Duration of auto-close sweep runs in seconds",
	Buckets: prometheus.DefBuckets,
})

var AutoCloseScannedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "parkwatch_autoclose_scanned_total",
	Help: "Number of violations scanned by the auto-close sweep",
})

var AutoCloseClosedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parkwatch_autoclose_closed_total",
	Help: "Number of violations closed by the auto-close sweep, by reason",
}, []string{"reason"})

var NotificationDispatchFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "parkwatch_notification_dispatch_failed_total",
	Help: "Number of notification inserts that failed and were swallowed",
})

var LifecycleBroadcastFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "parkwatch_lifecycle_broadcast_failed_total",
	Help: "Number of lifecycle pubsub broadcasts that failed and were swallowed",
})

var LifecycleTransitionAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parkwatch_lifecycle_transitions_total",
	Help: "Number of committed lifecycle transitions, by target status",
}, []string{"status"})
