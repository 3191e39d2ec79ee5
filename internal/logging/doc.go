// Package logging assembles structured slog loggers and formatting helpers used
// across marquee.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers plus component loggers so the
// pipeline, source readers, cache and watcher emit lines with the same shape.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
package logging
