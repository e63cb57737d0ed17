// Package observability holds the dev host's Prometheus collectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Signup and unregister outcomes, used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
)

var (
	listRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_devhost",
		Subsystem: "api",
		Name:      "list_requests_total",
		Help:      "Number of activity catalog requests served.",
	})
	signups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_devhost",
		Subsystem: "api",
		Name:      "signups_total",
		Help:      "Sign-up attempts by outcome.",
	}, []string{"outcome"})
	unregistrations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_devhost",
		Subsystem: "api",
		Name:      "unregistrations_total",
		Help:      "Unregister attempts by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(listRequests, signups, unregistrations)
}

// RecordList counts one catalog request.
func RecordList() {
	listRequests.Inc()
}

// RecordSignup counts one sign-up attempt.
func RecordSignup(outcome string) {
	signups.WithLabelValues(outcome).Inc()
}

// RecordUnregister counts one unregister attempt.
func RecordUnregister(outcome string) {
	unregistrations.WithLabelValues(outcome).Inc()
}

// ListRequests exposes the catalog request counter for tests.
func ListRequests() prometheus.Counter {
	return listRequests
}

// Signups exposes the sign-up counter for tests.
func Signups(outcome string) prometheus.Counter {
	return signups.WithLabelValues(outcome)
}

// Unregistrations exposes the unregister counter for tests.
func Unregistrations(outcome string) prometheus.Counter {
	return unregistrations.WithLabelValues(outcome)
}
