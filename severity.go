package xlog

/*
Convenience type-specific helpers. These are thin wrappers around Type that
provide inline hints in editors and documentation tools.

All of them format the message with the System formatter first. A formatting
failure produces no output at all: the handlers of the FLAG_INHERIT_HANDLERS
lineage get OnException instead (or the fallback writer if there are none).
Write failures are reported to the fallback writer.
*/

// Type formats the message and emits it with the given type.
func (l *Logger) Type(t LogType, format string, args ...any) {
	t = normType(t)
	var f Formatter
	l.system.Locked(func() {
		f = l.system.formatter
	})
	text, err := f.Format(format, args...)
	if err != nil {
		l.callOnException(t, format, err.Error())
		return
	}
	l.Print(t, text)
}

// Logs an informational message.
//
// Use for normal operational messages.
func (l *Logger) Info(format string, args ...any) {
	l.Type(LOG_INFO, format, args...)
}

// Logs a warning message (orange tag on console).
//
// Use for recoverable or noteworthy conditions that deserve attention.
func (l *Logger) Warn(format string, args ...any) {
	l.Type(LOG_WARN, format, args...)
}

// Logs a critical message (red tag on console).
func (l *Logger) Critical(format string, args ...any) {
	l.Type(LOG_CRITICAL, format, args...)
}
