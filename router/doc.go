// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the balance game kiosk API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, questions)

# Routes

	GET  /health          → "OK"
	GET  /                → "balance-game API v1"
	POST /session         → start a new respondent
	GET  /session         → current prompt
	POST /session/choice  → answer the current question
	POST /session/grade   → select grade
	POST /session/gender  → select gender
	POST /session/submit  → fold the record into the statistics
	GET  /questions       → question table
	GET  /report          → cumulative statistics
	GET  /report/count    → respondent count
	GET  /metrics         → Prometheus metrics

Everything except /health, /, and /metrics is wrapped with
middleware.WithLogging. Routing uses Go 1.22+ method patterns, so a wrong
method on a known path yields 405.
*/
package router
