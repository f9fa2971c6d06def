// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Balance Game survey.

Balance Game asks each respondent a fixed series of two-option questions,
then their grade and gender, and folds the answers into cumulative
per-bucket percentages that are shown back immediately.

# Running

The default mode serves a JSON API:

	go run .

Or run a terminal kiosk on the same machine:

	go run . -mode kiosk

# Configuration

All settings are optional. Values from a .env file in the working
directory are loaded before flags and the environment are read.

  - MODE (-mode): serve or kiosk (default: serve)
  - PORT (-p): Server port (default: 3318)
  - QUESTIONS_PATH (-q): YAML question table (default: built-in table)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - LOG_FILE (-log-file): rotate logs into this file instead of stderr

# Architecture

  - survey: per-respondent session state machine
  - stats: thread-safe aggregate counters and report
  - questions: question table loading
  - handlers: HTTP request handlers (kiosk session, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: enums, records, request/response types
  - tui: bubbletea kiosk
  - metrics: Prometheus collectors
  - logging: slog and log rotation setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
