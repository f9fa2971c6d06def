// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the balance game kiosk.

# Handler Types

Each handler is a struct with its dependencies:

  - KioskHandler: the single active respondent session
  - ResultsHandler: cumulative statistics

Handlers are created via constructor functions:

	kioskHandler := handlers.NewKioskHandler(store, questions)
	resultsHandler := handlers.NewResultsHandler(store)

# Respondent Flow

	POST /session         → StartSession (returns session_id and first prompt)
	POST /session/choice  → SubmitChoice {"choice": 1|2}
	POST /session/grade   → SubmitGrade {"grade": "FRESHMAN"}
	POST /session/gender  → SubmitGender {"gender": "FEMALE"}
	POST /session/submit  → Submit (ingests the record, returns the report)

Every step returns the next prompt. Mutating calls require the
X-Session-ID header; an id from a replaced session gets 409. Starting a new
session abandons the current one, which contributes nothing.

# Status Codes

  - 400: malformed JSON or an out-of-range value
  - 404: no active session
  - 409: call not valid in the current state, or stale session id
  - 500: a record the store refused (never expected)
*/
package handlers
