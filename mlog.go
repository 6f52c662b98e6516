// Package mlog is a small leveled logging library for command-line tools:
// print statements with severities, timestamps and per-level prefixes,
// written to stdout/stderr and optionally mirrored to a flat file at
// <home>/.log/<progname>.log. No rotation, no structured output, no
// network sinks.
//
//	mlog.Logf("starting %s", name)
//	mlog.Errorf("open %s: %v", path, err)
//	mlog.SetDebug(true)
//	mlog.Debugf("resolved %d entries", n)
//
// All logging calls are synchronous and safe for concurrent use: the lines
// of one record are never interleaved with another record's, on any sink.
package mlog

import (
	"fmt"
	"time"
)

// Logf prints a plain record with no severity prefix. Always emitted.
func Logf(format string, args ...any) {
	LogAt(LVL_IMPORTANT, format, args...)
}

// Importantf is Logf under its severity name.
func Importantf(format string, args ...any) {
	LogAt(LVL_IMPORTANT, format, args...)
}

// Errorf prints an error record to stderr.
func Errorf(format string, args ...any) {
	LogAt(LVL_ERROR, format, args...)
}

// Warnf prints a warning record to stderr.
func Warnf(format string, args ...any) {
	LogAt(LVL_WARN, format, args...)
}

// Infof prints an informational record.
func Infof(format string, args ...any) {
	LogAt(LVL_INFO, format, args...)
}

// Verbosef prints a record only when verbose output is enabled.
func Verbosef(format string, args ...any) {
	LogAt(LVL_VERBOSE, format, args...)
}

// Debugf prints a record only when debug output is enabled.
func Debugf(format string, args ...any) {
	LogAt(LVL_DEBUG, format, args...)
}

// Tracef prints a record only when debug output is enabled.
func Tracef(format string, args ...any) {
	LogAt(LVL_TRACE, format, args...)
}

// Bailf logs the message at error severity and terminates the process
// with a non-zero exit status. Nothing after the call executes.
func Bailf(format string, args ...any) {
	LogAt(LVL_ERROR, format, args...)
	osExit(1)
}

// LogAt is the single emit path behind every severity alias: gate,
// resolve the prefix, format (all lock-free), then hand the finished
// lines to the serialized sink.
func LogAt(level LogLevel, format string, args ...any) {
	level = normLevel(level)
	if suppressed(level) {
		return
	}
	body := fmt.Sprintf(format, args...)
	lines := formatLines(resolvePrefix(level), body, time.Now())
	emit(level, streamFor(level), lines)
}
