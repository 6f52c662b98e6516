package mlog

import env "github.com/caarlos0/env/v11"

// SetMinLevel sets the least severe level that is still emitted. Messages
// ranked after it (numerically greater) produce no output at all.
func SetMinLevel(minlevel LogLevel) {
	conf.sync.confMtx.Lock()
	defer conf.sync.confMtx.Unlock()
	conf.level = normLevel(minlevel)
}

// SetVerbose enables or disables LVL_VERBOSE output. Verbose messages are
// opt-in and stay silent without this, whatever the minimum level says.
// Enabling also widens the minimum level to admit them; disabling leaves
// the minimum level where it is.
func SetVerbose(enabled bool) {
	conf.sync.confMtx.Lock()
	defer conf.sync.confMtx.Unlock()
	conf.verbose = enabled
	if enabled && conf.level < LVL_VERBOSE {
		conf.level = LVL_VERBOSE
	}
}

// SetDebug enables or disables LVL_DEBUG and LVL_TRACE output. Enabling
// also widens the minimum level to admit them.
func SetDebug(enabled bool) {
	conf.sync.confMtx.Lock()
	defer conf.sync.confMtx.Unlock()
	conf.debug = enabled
	if enabled && conf.level < LVL_TRACE {
		conf.level = LVL_TRACE
	}
}

// SetStream overrides the per-level default console stream: STREAM_STDOUT
// or STREAM_STDERR force every record to one stream, STREAM_AUTO restores
// the default routing (alerting levels to stderr, the rest to stdout).
func SetStream(stream streamHint) {
	conf.sync.confMtx.Lock()
	defer conf.sync.confMtx.Unlock()
	conf.stream = normStream(stream)
}

// SetPrefix replaces the prefix for the level with a fixed string,
// dropping any dynamic generator set before.
func SetPrefix(level LogLevel, text string) {
	conf.sync.confMtx.Lock()
	defer conf.sync.confMtx.Unlock()
	conf.prefixes[normLevel(level)] = prefix{text: text}
}

// SetPrefixFunc replaces the prefix for the level with a generator that is
// invoked fresh on every emit. A nil fn restores the default fixed prefix.
func SetPrefixFunc(level LogLevel, fn func() string) {
	conf.sync.confMtx.Lock()
	defer conf.sync.confMtx.Unlock()
	level = normLevel(level)
	if fn == nil {
		conf.prefixes[level] = prefix{text: LevelPrefixes[level]}
	} else {
		conf.prefixes[level] = prefix{fn: fn}
	}
}

// resolvePrefix returns the current prefix text for the level. Generators
// are never cached: each call may legitimately return a different string.
// The generator reference is read under the lock but invoked outside it,
// so a slow generator cannot stall setters.
func resolvePrefix(level LogLevel) string {
	conf.sync.confMtx.RLock()
	p := conf.prefixes[normLevel(level)]
	conf.sync.confMtx.RUnlock()
	if p.fn != nil {
		return p.fn()
	}
	return p.text
}

// suppressed decides whether a message at the level is dropped under the
// current configuration.
func suppressed(level LogLevel) bool {
	conf.sync.confMtx.RLock()
	defer conf.sync.confMtx.RUnlock()
	if level > conf.level {
		return true
	}
	switch level {
	case LVL_VERBOSE:
		return !conf.verbose
	case LVL_DEBUG, LVL_TRACE:
		return !conf.debug
	}
	return false
}

// streamFor resolves the console stream for the level, honoring the global
// override.
func streamFor(level LogLevel) streamHint {
	conf.sync.confMtx.RLock()
	defer conf.sync.confMtx.RUnlock()
	if conf.stream != STREAM_AUTO {
		return conf.stream
	}
	if alerting(level) {
		return STREAM_STDERR
	}
	return STREAM_STDOUT
}

type envConfig struct {
	Level   string `env:"MLOG_LEVEL"`
	Verbose bool   `env:"MLOG_VERBOSE"`
	Debug   bool   `env:"MLOG_DEBUG"`
}

// SetupFromEnv applies MLOG_LEVEL, MLOG_VERBOSE and MLOG_DEBUG from the
// environment. An unknown level name silently falls back to the default
// level; only malformed boolean values surface as an error.
func SetupFromEnv() error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return err
	}
	SetMinLevel(ParseLevel(ec.Level))
	SetVerbose(ec.Verbose)
	SetDebug(ec.Debug)
	return nil
}
