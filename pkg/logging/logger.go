// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package logging provides the structured logger used by the identity core.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog with a debug toggle. Components treat a nil *Logger as
// "log nothing" so logging stays optional for library consumers.
type Logger struct {
	logger *slog.Logger
	debug  bool
}

// NewLogger creates a logger writing text records to stderr.
func NewLogger(debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{
		logger: slog.New(handler),
		debug:  debug,
	}
}

// DefaultLogger returns a logger with debug disabled.
func DefaultLogger() *Logger {
	return NewLogger(false)
}

// Info logs an informational message with slog attributes.
func (l *Logger) Info(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Info(msg, args...)
}

// Debug logs a debug message with slog attributes.
func (l *Logger) Debug(msg string, args ...any) {
	if l == nil || !l.debug {
		return
	}
	l.logger.Debug(msg, args...)
}

// Warn logs a warning message with slog attributes.
func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Warn(msg, args...)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	if l == nil || err == nil {
		return
	}
	l.logger.Error(err.Error())
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Error(fmt.Sprintf(format, args...))
}
