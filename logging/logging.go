// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/danielhkuo/balance-game/cliparse"
)

// ParseLevel maps a config level name to a slog level. Unknown names fall
// back to info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Output picks where logs go. A log file is rotated by lumberjack; the
// terminal kiosk owns the screen, so without a file its logs are dropped.
func Output(cfg cliparse.Config) io.WriteCloser {
	if cfg.LogFile != "" {
		return &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // Megabytes
			MaxBackups: 5,
			MaxAge:     30, // Days
			Compress:   true,
		}
	}
	if cfg.Mode == cliparse.ModeKiosk {
		return nopCloser{io.Discard}
	}
	return nopCloser{os.Stderr}
}

// Setup installs the default logger and returns the output so main can close
// it on exit.
func Setup(cfg cliparse.Config) io.Closer {
	out := Output(cfg)
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)})
	slog.SetDefault(slog.New(handler))
	return out
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
