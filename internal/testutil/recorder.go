package testutil

import (
	"fmt"

	"github.com/hupe1980/godux"
)

// Recorder collects an ordered trace of events, for asserting listener and
// middleware ordering.
type Recorder struct {
	Entries []string
}

// Record appends an entry to the trace.
func (r *Recorder) Record(entry string) {
	r.Entries = append(r.Entries, entry)
}

// Listener returns a store listener that records name on each notification.
func (r *Recorder) Listener(name string) godux.Listener {
	return func() { r.Record(name) }
}

// CaptureLogger implements logging.Logger and keeps every message, one slice
// per level, formatted as "msg key=value ...".
type CaptureLogger struct {
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

func format(msg string, args ...any) string {
	for i := 0; i+1 < len(args); i += 2 {
		msg += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}
	return msg
}

// Debug records a debug message.
func (l *CaptureLogger) Debug(msg string, args ...any) { l.Debugs = append(l.Debugs, format(msg, args...)) }

// Info records an info message.
func (l *CaptureLogger) Info(msg string, args ...any) { l.Infos = append(l.Infos, format(msg, args...)) }

// Warn records a warning.
func (l *CaptureLogger) Warn(msg string, args ...any) { l.Warns = append(l.Warns, format(msg, args...)) }

// Error records an error message.
func (l *CaptureLogger) Error(msg string, args ...any) { l.Errors = append(l.Errors, format(msg, args...)) }
