// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// admin configuration server and console.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits of the console log file.
const (
	clientLogMaxSizeMB  = 10
	clientLogMaxBackups = 3
	clientLogMaxAgeDays = 14

	defaultClientLogFile = "admin-console.log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a JSON logger writing to os.Stdout for the given role
// label (e.g. "server", "configctl").
//
// Every entry carries "role", a timestamp and a "func" caller field holding
// the fully-qualified function name. The global level is set to Debug.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewClientLogger constructs a logger for interactive hosts, where stdout is
// owned by the terminal UI. Entries go to a size-rotated file at path; an
// empty path puts "admin-console.log" next to the executable.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), defaultClientLogFile)
	}

	return newLogger(role, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    clientLogMaxSizeMB,
		MaxBackups: clientLogMaxBackups,
		MaxAge:     clientLogMaxAgeDays,
	})
}

func newLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel changes the global level. Unknown or empty names leave it as is.
func SetLevel(level string) {
	if level == "" {
		return
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger if none was attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
