package log

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	white = color.New(color.FgHiWhite).SprintFunc()
)

// LeveledLogger writes color-prefixed plugin diagnostics. It goes to
// a separate writer than the metric lines themselves so collectors
// never see it.
type LeveledLogger struct {
	out    map[Level]*log.Logger
	writer io.Writer
}

func NewLeveledLogger(writer io.Writer) *LeveledLogger {
	return &LeveledLogger{
		writer: writer,
		out: map[Level]*log.Logger{
			// debug is disabled by default
			LevelDebug: log.New(io.Discard, white("DBG "), log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile),
			LevelInfo:  log.New(writer, green("INF "), log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile),
			LevelError: log.New(writer, red("ERR "), log.Ldate|log.Ltime|log.Lmicroseconds|log.Llongfile),
		},
	}
}

func (l *LeveledLogger) SetDebug(enable bool) {
	if enable {
		l.out[LevelDebug].SetOutput(l.writer)
		return
	}
	l.out[LevelDebug].SetOutput(io.Discard)
}

func (l *LeveledLogger) Error(msg string) {
	l.log(LevelError, msg)
}

func (l *LeveledLogger) Errorf(msg string, args ...interface{}) {
	l.logf(LevelError, msg, args...)
}

func (l *LeveledLogger) Info(msg string) {
	l.log(LevelInfo, msg)
}

func (l *LeveledLogger) Infof(msg string, args ...interface{}) {
	l.logf(LevelInfo, msg, args...)
}

func (l *LeveledLogger) Debug(msg string) {
	l.log(LevelDebug, msg)
}

func (l *LeveledLogger) Debugf(msg string, args ...interface{}) {
	l.logf(LevelDebug, msg, args...)
}

func (l *LeveledLogger) log(lvl Level, msg string) {
	err := l.out[lvl].Output(3, msg)
	if err != nil {
		fmt.Printf("fatal: could not output logs: %v\n", err)
	}
}

func (l *LeveledLogger) logf(lvl Level, msg string, args ...interface{}) {
	err := l.out[lvl].Output(3, fmt.Sprintf(msg, args...))
	if err != nil {
		fmt.Printf("fatal: could not output logs: %v\n", err)
	}
}
