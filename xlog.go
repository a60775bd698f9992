// A lightweight hierarchical logging package for Go. Loggers are created as
// roots or as children of other loggers and can inherit prefixes, file
// outputs and handlers from their ancestors. All loggers of one System share
// a single lock, so lines never interleave and the tree can be reshaped
// (children are spliced onto the grandparent when a logger is closed) while
// other goroutines are logging.
//
// Preferred usage example:
//
//	func main() {
//	    log := xlog.New("manager", xlog.FLAG_NONE)
//	    defer log.Close()
//	    log.AddPrefix("[Manager]")
//	    if err := log.AddFile("logs/manager.log"); err != nil {
//	        ...
//	    }
//	    ilog := xlog.NewChild("manager.init", log, xlog.FLAG_INHERIT_ALL)
//	    defer ilog.Close()
//	    ilog.AddPrefix("[Init]")
//	    ilog.Info("environment ready in %v", elapsed)
//	}
package xlog

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"
)

var (
	defaultSystem     *System
	defaultSystemOnce sync.Once
)

// DefaultSystem returns the process-wide System used by New and built on
// first use.
func DefaultSystem() *System {
	defaultSystemOnce.Do(func() {
		defaultSystem = NewSystem()
	})
	return defaultSystem
}

// NewSystem creates an empty registry writing the console to os.Stdout with
// colors and reporting internal errors to os.Stderr.
func NewSystem() *System {
	s := new(System)
	s.children = map[ref][]ref{}
	s.console = os.Stdout
	s.colors = true
	s.fallbck = os.Stderr
	s.clock = time.Now
	s.formatter = SprintfFormatter{}
	s.msgbuf = bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
	return s
}

// New creates a root logger on the DefaultSystem.
func New(name string, flags Flags) *Logger {
	return DefaultSystem().NewLogger(name, flags)
}

// NewChild creates a logger whose parent is parent, sharing its System.
// Panics if parent is nil.
func NewChild(name string, parent *Logger, flags Flags) *Logger {
	if parent == nil {
		panic(_ERROR_MESSAGE_LOGGER_IS_NIL)
	}
	return parent.system.newLogger(name, parent, flags)
}

// NewLogger creates a root logger on this System.
func (s *System) NewLogger(name string, flags Flags) *Logger {
	return s.newLogger(name, nil, flags)
}

// Both root and child registration happen under the lock.
func (s *System) newLogger(name string, parent *Logger, flags Flags) *Logger {
	l := &Logger{
		system:  s,
		name:    name,
		flags:   normFlags(flags),
		console: true,
		curType: LOG_INFO,
	}
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	if parent != nil && !parent.closed {
		l.parent = parent.self
	}
	s.register(l)
	return l
}

// Sets the fallback output used to report internal errors (write failures,
// handler panics, format errors nobody handled), io.Discard is used instead
// of nil to silently drop fallback messages.
//
// The operation is protected by mutex for thread safety.
func (s *System) SetFallback(f OutType) *System {
	s.sync.fbckMtx.Lock()
	defer s.sync.fbckMtx.Unlock()
	if f != nil {
		s.fallbck = f
	} else {
		s.fallbck = io.Discard
	}
	return s
}

// Returns the current fallback output.
func (s *System) Fallback() OutType {
	s.sync.fbckMtx.RLock()
	defer s.sync.fbckMtx.RUnlock()
	return s.fallbck
}

// Sets the console output (os.Stdout by default), nil discards console lines.
func (s *System) SetConsoleOutput(w OutType) *System {
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	if w != nil {
		s.console = w
	} else {
		s.console = io.Discard
	}
	return s
}

// Enables or disables ANSI colors of type tags on console. Files never get
// colors.
func (s *System) SetConsoleColors(enabled bool) *System {
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	s.colors = enabled
	return s
}

// Sets the clock used for timestamps, nil restores time.Now.
func (s *System) SetClock(clock func() time.Time) *System {
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	if clock != nil {
		s.clock = clock
	} else {
		s.clock = time.Now
	}
	return s
}

// Sets the formatter used by Info/Warn/Critical/Type, nil restores
// SprintfFormatter.
func (s *System) SetFormatter(f Formatter) *System {
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	if f != nil {
		s.formatter = f
	} else {
		s.formatter = SprintfFormatter{}
	}
	return s
}

// handleLogWriteError writes a human-readable error message to the fallback
// writer. A read lock is used since we only need consistent access to fallbck.
func (s *System) handleLogWriteError(errormsg string) {
	s.sync.fbckMtx.RLock()
	defer s.sync.fbckMtx.RUnlock()
	if s.fallbck != nil {
		s.fallbck.Write([]byte(errormsg + "\n"))
	}
}
