// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Mode: serve (HTTP kiosk API) or kiosk (terminal UI) (default: serve)
  - Port: Server listen port (default: 3318)
  - QuestionsPath: YAML question table (default: built-in table)
  - LogLevel: debug, info, warn, or error (default: info)
  - LogFile: rotate logs into this file instead of stderr

# CLI Flags

	-mode       Run mode
	-p          Server port
	-q          Question table path
	-log-level  Log level
	-log-file   Log file path

# Environment Variables

Flags fall back to environment variables:

	MODE           → -mode
	PORT           → -p
	QUESTIONS_PATH → -q
	LOG_LEVEL      → -log-level
	LOG_FILE       → -log-file

CLI flags take precedence over environment variables. LoadDotEnv can seed
the environment from a .env file first; it never overrides variables that
are already set.

# Example

	// In main.go
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
*/
package cliparse
