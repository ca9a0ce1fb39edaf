// Package metrics provides Prometheus observability metrics for the vacation
// planner. It covers request lifecycle activity and coverage analysis health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// REQUEST LIFECYCLE METRICS
// =============================================================================

// RequestsCreatedTotal tracks vacation requests successfully created.
var RequestsCreatedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "vacation",
	Name:      "requests_created_total",
	Help:      "Total vacation requests successfully created",
})

// RequestTransitionsTotal tracks status transitions by outcome.
var RequestTransitionsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vacation",
	Name:      "request_transitions_total",
	Help:      "Total request status transitions by outcome (approved, rejected, cancelled)",
}, []string{"outcome"})

// RequestRejectionsByReason tracks failed request creations by cause.
var RequestRejectionsByReason = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vacation",
	Name:      "request_failures_total",
	Help:      "Total request creations refused, broken down by cause",
}, []string{"cause"})

// =============================================================================
// COVERAGE ANALYSIS METRICS
// =============================================================================

// AnalysesRunTotal tracks analyzer invocations by analysis type.
var AnalysesRunTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "coverage",
	Name:      "analyses_run_total",
	Help:      "Total coverage analyses executed by type (conflicts, team, suggestions)",
}, []string{"type"})

// ConflictsDetectedTotal tracks detected conflicts by severity.
var ConflictsDetectedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "coverage",
	Name:      "conflicts_detected_total",
	Help:      "Total request conflicts detected, broken down by severity",
}, []string{"severity"})

// LastOverallCoverage tracks the overall coverage percentage of the most
// recent team analysis. A sustained low value indicates staffing risk.
var LastOverallCoverage = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "coverage",
	Name:      "last_overall_percentage",
	Help:      "Overall coverage percentage reported by the most recent team coverage analysis",
})

// HTTPRequestsTotal tracks HTTP traffic by route and status class.
var HTTPRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by route pattern and status class",
}, []string{"route", "status"})
