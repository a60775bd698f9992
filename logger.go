package xlog

/*
Logger construction helpers, destruction and configuration.

Every mutator takes the System lock for the duration of the change, so
configuration may be changed from any goroutine while other loggers of the
family are emitting. Duplicates (paths, prefixes, handlers) are allowed and
each occurrence acts on its own.
*/

import (
	"errors"
	"slices"

	"go.uber.org/multierr"
)

// Close destroys the logger: it is removed from its System, its children are
// rebound to its parent and its files are flushed and closed. Handlers are not
// notified. Errors of all files are combined. Subsequent calls return nil.
func (l *Logger) Close() (err error) {
	s := l.system
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	if l.closed {
		return nil
	}
	s.unregister(l)
	l.closed = true
	for _, fo := range l.files {
		err = multierr.Append(err, fo.Close())
	}
	l.files = nil
	l.handlers = nil
	return err
}

// Name returns the name given at construction.
func (l *Logger) Name() string { return l.name }

// System returns the registry the logger belongs to.
func (l *Logger) System() *System { return l.system }

// Parent returns the current parent (it changes when an ancestor is closed)
// or nil for a root.
func (l *Logger) Parent() *Logger {
	l.system.sync.mtx.Lock()
	defer l.system.sync.mtx.Unlock()
	return l.system.resolve(l.parent)
}

// IsClosed reports whether Close was called.
func (l *Logger) IsClosed() bool {
	l.system.sync.mtx.Lock()
	defer l.system.sync.mtx.Unlock()
	return l.closed
}

// Runs f under the System lock unless the logger is closed.
func (l *Logger) change(f func()) error {
	l.system.sync.mtx.Lock()
	defer l.system.sync.mtx.Unlock()
	if l.closed {
		return errors.New(_ERROR_MESSAGE_LOGGER_CLOSED)
	}
	f()
	return nil
}

// AddFile opens path for appending (creating missing directories) and attaches
// it to the logger. The file is owned by the logger and closed with it.
func (l *Logger) AddFile(path string, opts ...FileOption) error {
	settings := fileSettings{policy: FLUSH_EACH_WRITE}
	for _, opt := range opts {
		opt(&settings)
	}
	var openErr error
	err := l.change(func() {
		var fo *FileOutput
		if fo, openErr = OpenFileOutput(path, settings.policy); openErr == nil {
			l.files = append(l.files, fo)
		}
	})
	if err != nil {
		return err
	}
	return openErr
}

// Files returns the paths of the attached files in attach order.
func (l *Logger) Files() (paths []string) {
	l.change(func() {
		for _, fo := range l.files {
			paths = append(paths, fo.path)
		}
	})
	return paths
}

// Flush flushes every attached file (meaningful for FLUSH_BUFFERED only).
func (l *Logger) Flush() (err error) {
	if cerr := l.change(func() {
		for _, fo := range l.files {
			err = multierr.Append(err, fo.Flush())
		}
	}); cerr != nil {
		return cerr
	}
	return err
}

// AddPrefix appends a prefix. Prefixes are written after the inherited ones,
// each followed by a single space.
func (l *Logger) AddPrefix(prefix string) *Logger {
	l.change(func() {
		l.prefixes = append(l.prefixes, prefix)
	})
	return l
}

// Prefixes returns a copy of the logger's own prefixes.
func (l *Logger) Prefixes() (prefixes []string) {
	l.change(func() {
		prefixes = slices.Clone(l.prefixes)
	})
	return prefixes
}

// AddHandler attaches a handler and returns the id to remove it with. Nil
// handlers and closed loggers give 0.
func (l *Logger) AddHandler(h Handler) (id HandlerID) {
	if h == nil {
		return 0
	}
	l.change(func() {
		l.system.lastHID++
		id = l.system.lastHID
		l.handlers = append(l.handlers, handlerEntry{id: id, handler: h})
	})
	return id
}

// RemoveHandler detaches the handler with the given id. Returns false if no
// such handler is attached to this logger.
func (l *Logger) RemoveHandler(id HandlerID) (removed bool) {
	l.change(func() {
		i := slices.IndexFunc(l.handlers, func(e handlerEntry) bool { return e.id == id })
		if i >= 0 {
			l.handlers = slices.Delete(l.handlers, i, i+1)
			removed = true
		}
	})
	return removed
}

// SetFlag sets (enable) or clears the given flag bits. Unknown bits are ignored.
func (l *Logger) SetFlag(flag Flags, enable bool) *Logger {
	flag = normFlags(flag)
	l.change(func() {
		if enable {
			l.flags |= flag
		} else {
			l.flags &^= flag
		}
	})
	return l
}

// GetFlag reports whether any of the given flag bits is set.
func (l *Logger) GetFlag(flag Flags) (set bool) {
	l.system.Locked(func() {
		set = l.flags&flag != 0
	})
	return set
}

// Flags returns the whole flag set.
func (l *Logger) Flags() (flags Flags) {
	l.system.Locked(func() {
		flags = l.flags
	})
	return flags
}

// SetConsole toggles console output of this logger. It works together with
// FLAG_IGNORE_CONSOLE: a line reaches the console only when the console is
// enabled and the flag is clear.
func (l *Logger) SetConsole(enabled bool) *Logger {
	l.change(func() {
		l.console = enabled
	})
	return l
}

// IsConsole reports the state set by SetConsole (true by default).
func (l *Logger) IsConsole() (enabled bool) {
	l.system.Locked(func() {
		enabled = l.console
	})
	return enabled
}
