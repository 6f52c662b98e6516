package mlog

import "strings"

// Levels are ranked: lower value means more severe. Gating compares the
// message level against the configured minimum, so LVL_TRACE admits
// everything and LVL_FATAL almost nothing.
const (
	LVL_FATAL LogLevel = iota
	LVL_ERROR
	LVL_WARN
	LVL_IMPORTANT
	LVL_INFO
	LVL_VERBOSE
	LVL_DEBUG
	LVL_TRACE
	_LVL_MAX_for_checks_only
)

const DEFAULT_LOG_LEVEL = LVL_IMPORTANT

const (
	TIME_FMT    = "2006-01-02 15:04:05"
	CONT_MARKER = "[/]\t"
)

type LevelMap [_LVL_MAX_for_checks_only]string

// Default prefixes, one per level. LVL_IMPORTANT is the plain "just print
// it" level and carries no prefix.
var LevelPrefixes = LevelMap{
	"FATAL:",   //LVL_FATAL
	"ERROR:",   //LVL_ERROR
	"WARNING:", //LVL_WARN
	"",         //LVL_IMPORTANT
	"INFO:",    //LVL_INFO
	"VERBOSE:", //LVL_VERBOSE
	"DEBUG:",   //LVL_DEBUG
	"TRACE:",   //LVL_TRACE
}

var LevelNames = LevelMap{
	"FATAL",     //LVL_FATAL
	"ERROR",     //LVL_ERROR
	"WARNING",   //LVL_WARN
	"IMPORTANT", //LVL_IMPORTANT
	"INFO",      //LVL_INFO
	"VERBOSE",   //LVL_VERBOSE
	"DEBUG",     //LVL_DEBUG
	"TRACE",     //LVL_TRACE
}

func normLevel(level LogLevel) LogLevel {
	return norm_byte(level, _LVL_MAX_for_checks_only, DEFAULT_LOG_LEVEL)
}

func normStream(stream streamHint) streamHint {
	return norm_byte(stream, _STREAM_MAX_for_checks_only, STREAM_AUTO)
}

func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// alerting reports whether the level targets stderr by default.
func alerting(level LogLevel) bool {
	return level <= LVL_WARN
}

// optIn reports whether the level is suppressed unless explicitly enabled.
func optIn(level LogLevel) bool {
	return level >= LVL_VERBOSE
}

// ParseLevel maps a level name to its LogLevel, case-insensitively.
// Unrecognized or empty input falls back to DEFAULT_LOG_LEVEL, never an
// error: a bad environment value must not break a tool that only wanted
// logging.
func ParseLevel(name string) LogLevel {
	name = strings.ToUpper(strings.TrimSpace(name))
	switch name {
	case "WARN":
		return LVL_WARN
	case "LOG":
		return LVL_IMPORTANT
	}
	for l, n := range LevelNames {
		if name == n {
			return LogLevel(l)
		}
	}
	return DEFAULT_LOG_LEVEL
}
