package types

import (
	"fmt"
	"io"
)

// DebugLogger receives diagnostic messages.
type DebugLogger interface {
	Log(format string, args ...interface{})
}

// NoopLogger is a no-op logger
type NoopLogger struct{}

func (NoopLogger) Log(format string, args ...interface{}) {}

// WriterLogger writes each message as one prefixed line to W.
type WriterLogger struct {
	W      io.Writer
	Prefix string
}

func (l WriterLogger) Log(format string, args ...interface{}) {
	fmt.Fprint(l.W, l.Prefix)
	fmt.Fprintf(l.W, format+"\n", args...)
}
