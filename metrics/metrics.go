// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors for the kiosk.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/balance-game/models"
	"github.com/danielhkuo/balance-game/stats"
	"github.com/danielhkuo/balance-game/survey"
)

var (
	// RespondentsTotal counts ingested records by demographic
	RespondentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "balance_respondents_total",
		Help: "Completed respondents folded into the statistics",
	}, []string{"grade", "gender"})

	// SessionsStarted counts new respondent sessions
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "balance_sessions_started_total",
		Help: "Respondent sessions started",
	})

	// SessionErrors counts rejected driver calls by error type
	SessionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "balance_session_errors_total",
		Help: "Rejected session and ingest calls by error type",
	}, []string{"error_type"})
)

// ObserveIngest records a successfully ingested respondent.
func ObserveIngest(record models.RespondentRecord) {
	RespondentsTotal.WithLabelValues(record.Grade.String(), record.Gender.String()).Inc()
}

// ObserveError classifies err and counts it.
func ObserveError(err error) {
	SessionErrors.WithLabelValues(ErrorType(err)).Inc()
}

// ErrorType maps a core error to a short label value.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, survey.ErrInvalidStateTransition):
		return "invalid_state_transition"
	case errors.Is(err, survey.ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, stats.ErrMalformedRecord):
		return "malformed_record"
	}
	return "other"
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
