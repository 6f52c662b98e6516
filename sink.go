package mlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const LOG_DIR = ".log"

// InitError reports which stage of the file sink setup failed. The wrapped
// cause is reachable through errors.Cause / errors.Unwrap.
type InitError struct {
	Stage string // "homedir", "mkdir" or "open"
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init file sink (%s): %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// InitFileSink opens <home>/.log/<progname>.log (truncating any previous
// content) and mirrors every emitted record to it from then on. One-shot:
// only the first call in the process lifetime does any work and reports
// its outcome; every later call is a silent success no-op, whatever its
// arguments. Concurrent first callers are serialized by the gate and a
// racing caller does not return before the winner has settled.
//
// A failed init leaves the library logging to console only, exactly as if
// file logging had never been requested.
func InitFileSink(progname string, enable bool) error {
	var initErr error
	conf.sync.fileOnce.Do(func() {
		if !enable {
			return
		}
		initErr = openLogFile(progname)
	})
	return initErr
}

func openLogFile(progname string) error {
	home, err := homedir.Dir()
	if err != nil {
		return &InitError{Stage: "homedir", Err: errors.Wrap(err, "resolve user home")}
	}
	dir := filepath.Join(home, LOG_DIR)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &InitError{Stage: "mkdir", Err: errors.Wrapf(err, "create log dir %s", dir)}
	}
	path := filepath.Join(dir, progname+".log")
	f, err := os.Create(path)
	if err != nil {
		return &InitError{Stage: "open", Err: errors.Wrapf(err, "open log file %s", path)}
	}
	conf.sync.emitMtx.Lock()
	conf.logfile = f
	conf.sync.emitMtx.Unlock()
	return nil
}

// emit writes one formatted record to the console stream and, when a file
// sink is open, mirrors the plain lines to it. The whole record goes out
// under one lock so concurrent emits never interleave lines, across both
// sinks. Console write errors are swallowed (a vanished terminal must not
// abort the caller), a file write error is fatal: once file logging was
// promised, silently losing records is worse than stopping.
func emit(level LogLevel, stream streamHint, lines []string) {
	conf.sync.emitMtx.Lock()
	defer conf.sync.emitMtx.Unlock()

	out := conStdout
	if stream == STREAM_STDERR {
		out = conStderr
	}
	for _, line := range lines {
		_, _ = io.WriteString(out, colorize(level, stream, line)+"\n")
	}
	if conf.logfile == nil {
		return
	}
	for _, line := range lines {
		if _, err := io.WriteString(conf.logfile, line+"\n"); err != nil {
			fmt.Fprintf(conStderr, "FATAL: writing log file: %v\n", err)
			osExit(2)
		}
	}
}
