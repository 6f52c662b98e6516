package mlog

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Per-level styling for the console copy of a record. The file copy is
// always written plain.
var levelColors = [_LVL_MAX_for_checks_only]*color.Color{
	color.New(color.FgRed, color.Bold), //LVL_FATAL
	color.New(color.FgRed),             //LVL_ERROR
	color.New(color.FgYellow),          //LVL_WARN
	color.New(color.Bold),              //LVL_IMPORTANT
	nil,                                //LVL_INFO - plain
	color.New(color.Faint),             //LVL_VERBOSE
	color.New(color.Faint),             //LVL_DEBUG
	color.New(color.Faint),             //LVL_TRACE
}

var (
	stdoutIsTerm = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stderrIsTerm = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

// colorize styles a console line for the level. Lines go out unchanged
// when the target stream is not a terminal or the level has no styling.
func colorize(level LogLevel, stream streamHint, line string) string {
	c := levelColors[normLevel(level)]
	if c == nil {
		return line
	}
	isTerm := stdoutIsTerm
	if stream == STREAM_STDERR {
		isTerm = stderrIsTerm
	}
	if !isTerm || color.NoColor {
		return line
	}
	return c.Sprint(line)
}
