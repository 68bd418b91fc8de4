// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging builds the console logger shared by the scanner, the
// renderer and the CLI.
package logging // import "github.com/toeirei/keyreport/internal/logging"

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger used by the helper functions below.
var L = New(os.Stdout, false)

// New returns a logger writing to w without timestamps. Progress and
// diagnostics are user-facing, so they go to stdout rather than stderr.
func New(w io.Writer, verbose bool) *clog.Logger {
	l := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: false,
		Level:           clog.InfoLevel,
	})
	SetVerbose(l, verbose)
	return l
}

// SetVerbose toggles debug output on l.
func SetVerbose(l *clog.Logger, verbose bool) {
	if verbose {
		l.SetLevel(clog.DebugLevel)
	} else {
		l.SetLevel(clog.InfoLevel)
	}
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
