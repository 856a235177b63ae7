// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format by default, or in logfmt-style text, and the
// resulting logger is supplied to Fx applications and the config loader.
package logging
