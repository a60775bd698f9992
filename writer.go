package xlog

/*
io.Writer interface implementation

The Logger implements io.Writer so it can be handed to code that only knows
writers (log.New, exec.Cmd.Stdout...). The semantics are:
  - Lvl(t) sets the type used by subsequent Write calls.
  - Write(p) emits p as one message (a single trailing newline is dropped)
    and returns len(p) on success, 0 and a non-nil error on failure.

This allows patterns like:

	fmt.Fprintf(logger.Lvl(LOG_WARN), "disk low: %d%%", percent)

But remember that Lvl and Write are two calls: concurrent users of the same
logger with different types should use Print instead.
*/

import (
	"bytes"
)

// Lvl sets the logger's current type (used by Write) and returns the same
// logger for convenient chaining.
func (l *Logger) Lvl(t LogType) *Logger {
	t = normType(t)
	l.system.Locked(func() {
		l.curType = t
	})
	return l
}

// Write implements io.Writer. Nil or empty payloads are a zero-length write
// with no error. The payload is not formatted.
func (l *Logger) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	var t LogType
	l.system.Locked(func() {
		t = l.curType
	})
	err = l.Print_with_err(t, string(bytes.TrimSuffix(p, []byte{'\n'})))
	if err == nil {
		n = len(p)
	}
	return n, err
}
