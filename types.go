package mlog

import (
	"io"
	"os"
	"sync"
)

type LogLevel uint8

type streamHint uint8

const (
	STREAM_AUTO streamHint = iota
	STREAM_STDOUT
	STREAM_STDERR
	_STREAM_MAX_for_checks_only
)

// prefix is a tagged variant: when fn is set it wins and is invoked fresh
// on every resolve, otherwise text is used as-is. Setting one kind drops
// the other.
type prefix struct {
	text string
	fn   func() string
}

type logConfig struct {
	sync struct {
		confMtx  sync.RWMutex // prefixes, level, flags, stream override
		emitMtx  sync.Mutex   // console+file write section
		fileOnce sync.Once    // one-shot file sink setup
	}
	prefixes [_LVL_MAX_for_checks_only]prefix
	level    LogLevel
	verbose  bool
	debug    bool
	stream   streamHint
	logfile  io.Writer
}

// Injection points for tests.
var (
	conStdout io.Writer = os.Stdout
	conStderr io.Writer = os.Stderr
	osExit              = os.Exit
)

// conf is the process-wide configuration, alive for the process lifetime
// and mutated only through the exported setters.
var conf = newConfig()

func newConfig() *logConfig {
	c := new(logConfig)
	c.level = DEFAULT_LOG_LEVEL
	c.stream = STREAM_AUTO
	for l := range c.prefixes {
		c.prefixes[l] = prefix{text: LevelPrefixes[l]}
	}
	return c
}
