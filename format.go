package mlog

import (
	"strings"
	"time"
)

// formatLines renders one log record into its final output lines. Pure:
// no I/O, no locks, so it is safe to run before the emit lock is taken.
//
// The first line is `<prefix> <timestamp>: <body>` (just
// `<timestamp>: <body>` when the prefix is empty). Every further line of
// a multi-line body becomes a continuation line marked with CONT_MARKER
// instead of repeating the prefix and timestamp. A single trailing
// newline is trimmed so it does not produce an empty continuation.
func formatLines(prefix, body string, now time.Time) []string {
	body = strings.TrimSuffix(body, "\n")
	parts := strings.Split(body, "\n")
	lines := make([]string, 0, len(parts))

	var head strings.Builder
	if prefix != "" {
		head.WriteString(prefix)
		head.WriteByte(' ')
	}
	head.WriteString(now.Format(TIME_FMT))
	head.WriteString(": ")
	head.WriteString(parts[0])
	lines = append(lines, head.String())

	for _, part := range parts[1:] {
		lines = append(lines, CONT_MARKER+part)
	}
	return lines
}
