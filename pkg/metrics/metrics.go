// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package metrics exposes Prometheus instrumentation for the identity
// core. The surrounding server wires the default registry to its /metrics
// endpoint; this package only maintains the counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts identity operations by component, operation
	// and result. Components: password, challenge, token, passkey.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mvn",
			Subsystem: "identity",
			Name:      "operations_total",
			Help:      "Total identity operations by component, operation and result.",
		},
		[]string{"component", "operation", "result"},
	)

	// ChallengesActive tracks outstanding unconsumed challenges across all
	// challenge stores in the process.
	ChallengesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mvn",
			Subsystem: "identity",
			Name:      "challenges_active",
			Help:      "Number of stored challenges that are unconsumed and unexpired.",
		},
	)

	// TokensIssuedTotal counts issued access tokens by role.
	TokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mvn",
			Subsystem: "identity",
			Name:      "tokens_issued_total",
			Help:      "Total access tokens issued by role.",
		},
		[]string{"role"},
	)
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// RecordOperation increments the operation counter with a success or
// failure result label.
func RecordOperation(component, operation string, ok bool) {
	result := ResultFailure
	if ok {
		result = ResultSuccess
	}
	OperationsTotal.WithLabelValues(component, operation, result).Inc()
}
