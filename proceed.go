package xlog

// never log into the same System from a handler's OnMessage!

/*
The emission pipeline. Responsible for:
  - composing the line (timestamp, type tag, inherited prefixes, text)
  - writing it to the console and to the files of the inheritance lineage
  - notifying the handlers of the lineage
  - redirecting formatting failures to OnException
  - error reporting to the fallback writer

Inheritance is resolved by lineage(): the logger itself, then each ancestor
reachable while the current link has the consulted flag set. A child decides
whether to consult its parent; the parent's own flag decides whether the walk
goes on to the grandparent.
*/

import (
	"bytes"
	"errors"

	"go.uber.org/multierr"
)

// lineage returns l followed by the ancestors reachable through links that
// have flag set. Must be called with the System lock held.
func (l *Logger) lineage(flag Flags) []*Logger {
	chain := []*Logger{l}
	for cur := l; cur.flags&flag != 0; {
		parent := l.system.resolve(cur.parent)
		if parent == nil {
			break
		}
		chain = append(chain, parent)
		cur = parent
	}
	return chain
}

// collectPrefixes writes the inherited prefixes (root-most first) and then
// the logger's own ones, each followed by a space.
func (l *Logger) collectPrefixes(out *bytes.Buffer) {
	chain := l.lineage(FLAG_INHERIT_PREFIXES)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, p := range chain[i].prefixes {
			out.WriteString(p)
			out.WriteByte(' ')
		}
	}
}

// Print_with_err emits text with the given type. The whole pipeline runs in
// one critical section of the System lock: the line is written to the console
// (unless suppressed), to every file of the FLAG_INHERIT_FILES lineage and
// handed to every handler of the FLAG_INHERIT_HANDLERS lineage.
//
// Returns the combined file write errors; the line still reaches every other
// destination.
func (l *Logger) Print_with_err(t LogType, text string) error {
	s := l.system
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	if l.closed {
		return errors.New(_ERROR_MESSAGE_LOGGER_CLOSED)
	}
	t = normType(t)
	date := s.clock().Format(DEFAULT_TIME_FORMAT)
	tag, color := "", ""
	if l.flags&FLAG_DISABLE_TYPE_PREFIXES == 0 {
		tag, color = TypeTags[t], TypeColors[t]
	}

	buf := s.msgbuf
	buf.Reset()
	l.collectPrefixes(buf)
	prefixes := buf.String()

	if l.console && l.flags&FLAG_IGNORE_CONSOLE == 0 {
		buildLine(buf, date, tag, color, s.colors, prefixes, text)
		if _, err := buf.WriteTo(s.console); err != nil {
			s.handleLogWriteError("error writing log to console: " + err.Error())
		}
	}

	line := buildLine(buf, date, tag, "", false, prefixes, text).String()
	err := l.printToFiles(line)
	l.callOnMessage(t, line)
	return err
}

// Print is Print_with_err with errors written to the fallback writer.
func (l *Logger) Print(t LogType, text string) {
	if err := l.Print_with_err(t, text); err != nil {
		l.system.handleLogWriteError(err.Error())
	}
}

// buildLine composes "<date> [<tag> ]<prefixes><text>\n" into out (after
// resetting it). The tag is wrapped into ANSI color fragments when colored is
// set and color is not empty.
func buildLine(out *bytes.Buffer, date, tag, color string, colored bool, prefixes, text string) *bytes.Buffer {
	out.Reset()
	out.WriteString(date)
	out.WriteByte(' ')
	if tag != "" {
		if colored && color != "" {
			out.WriteString(ANSI_COL_PRFX + color + ANSI_COL_SUFX + tag + ANSI_COL_RESET)
		} else {
			out.WriteString(tag)
		}
		out.WriteByte(' ')
	}
	out.WriteString(prefixes)
	out.WriteString(text)
	out.WriteByte('\n')
	return out
}

// printToFiles writes line to every file of the FLAG_INHERIT_FILES lineage,
// own files first.
func (l *Logger) printToFiles(line string) (err error) {
	data := []byte(line)
	for _, lg := range l.lineage(FLAG_INHERIT_FILES) {
		for _, fo := range lg.files {
			if _, werr := fo.Write(data); werr != nil {
				err = multierr.Append(err, errors.New(_ERROR_MESSAGE_WRITE_FILE+" "+fo.path+": "+werr.Error()))
			}
		}
	}
	return err
}

// callOnMessage notifies every handler of the FLAG_INHERIT_HANDLERS lineage,
// own handlers first.
func (l *Logger) callOnMessage(t LogType, line string) {
	for _, lg := range l.lineage(FLAG_INHERIT_HANDLERS) {
		for _, e := range lg.handlers {
			l.system.safeCall(func() { e.handler.OnMessage(t, line) })
		}
	}
}

// callOnException notifies the handlers of the FLAG_INHERIT_HANDLERS lineage
// about a formatting failure. The handler list is taken under the lock and
// the handlers run outside it, so they may log. If no handler got the
// exception it is written to the fallback writer.
func (l *Logger) callOnException(t LogType, format, what string) {
	var handlers []Handler
	var closed bool
	l.system.Locked(func() {
		if closed = l.closed; closed {
			return
		}
		for _, lg := range l.lineage(FLAG_INHERIT_HANDLERS) {
			for _, e := range lg.handlers {
				handlers = append(handlers, e.handler)
			}
		}
	})
	if closed {
		l.system.handleLogWriteError(_ERROR_MESSAGE_LOGGER_CLOSED)
		return
	}
	if len(handlers) == 0 {
		l.system.handleLogWriteError(_ERROR_MESSAGE_LOST_EXCEPTION + " (" + t.String() + "): " + what)
		return
	}
	for _, h := range handlers {
		l.system.safeCall(func() { h.OnException(t, format, what) })
	}
}

// safeCall runs a handler callback; a panic is reported to the fallback
// writer and does not stop the pipeline.
func (s *System) safeCall(f func()) {
	defer func() {
		if r := recover(); r != nil {
			s.handleLogWriteError(_ERROR_MESSAGE_HANDLER_PANIC + panicDesc(r))
		}
	}()
	f()
}
