package mlog

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// FakeWriter collects everything written to it. Safe for concurrent use.
type FakeWriter struct {
	mtx    sync.Mutex
	buffer []byte
	fail   bool
}

func (w *FakeWriter) Write(p []byte) (int, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if w.fail {
		return 0, assert.AnError
	}
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

func (w *FakeWriter) Bytes() []byte {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return bytes.Clone(w.buffer)
}

// resetConf puts the package globals back to their pristine state and
// captures console output in fresh fakes for one test.
func resetConf(t *testing.T) (out, err *FakeWriter) {
	t.Helper()
	out, err = &FakeWriter{}, &FakeWriter{}
	conf = newConfig()
	conStdout, conStderr = out, err
	prevExit := osExit
	prevNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		conf = newConfig()
		conStdout, conStderr = os.Stdout, os.Stderr
		osExit = prevExit
		color.NoColor = prevNoColor
	})
	return out, err
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string // description of this test case
		input string
		wants LogLevel
	}{
		{"exact", "ERROR", LVL_ERROR},
		{"lower", "error", LVL_ERROR},
		{"mixed", "Error", LVL_ERROR},
		{"padded", "  debug ", LVL_DEBUG},
		{"warn_short", "warn", LVL_WARN},
		{"warn_long", "warning", LVL_WARN},
		{"log_alias", "log", LVL_IMPORTANT},
		{"trace", "TRACE", LVL_TRACE},
		{"empty", "", DEFAULT_LOG_LEVEL},
		{"garbage", "loud", DEFAULT_LOG_LEVEL},
		{"important", "IMPORTANT", LVL_IMPORTANT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wants, ParseLevel(tt.input))
		})
	}
}

func TestNormLevel(t *testing.T) {
	assert.Equal(t, LVL_FATAL, normLevel(LVL_FATAL))
	assert.Equal(t, LVL_TRACE, normLevel(LVL_TRACE))
	assert.Equal(t, DEFAULT_LOG_LEVEL, normLevel(_LVL_MAX_for_checks_only))
	assert.Equal(t, DEFAULT_LOG_LEVEL, normLevel(LogLevel(200)))
}

func TestLevelClasses(t *testing.T) {
	for l := LVL_FATAL; l < _LVL_MAX_for_checks_only; l++ {
		assert.Equal(t, l <= LVL_WARN, alerting(l), LevelNames[l])
		assert.Equal(t, l >= LVL_VERBOSE, optIn(l), LevelNames[l])
	}
}
