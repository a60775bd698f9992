package xlog

/*
Defines the core data types of the hierarchical logger:
  - Flags and LogType enums
  - ref: generational handle into the System arena (parent links)
  - Logger: one node of a logger family
  - System: registry shared by a logger family (lock, arena, outputs)
  - FileOutput: append-only file owned by a Logger
  - Handler: observer of emitted messages and formatting failures
*/

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sync"
	"time"
)

type basetype byte // basetype is the underlying byte-sized representation used for enums

type Flags uint       // Logger behavior bitset (see FLAG_* constants)
type LogType basetype // Message severity (Info, Warn, Critical)
type FlushPolicy basetype

type OutType io.Writer // Console and fallback outputs (alias for io.Writer)

// HandlerID identifies a handler attached to a Logger. Zero is never issued.
type HandlerID uint64

// ref addresses an arena slot of a System. The zero value (gen == 0) means
// "no logger"; a ref whose generation no longer matches its slot is stale.
type ref struct {
	index uint32
	gen   uint32
}

// slot is one arena cell. gen is bumped every time the cell is released.
type slot struct {
	logger *Logger
	gen    uint32
}

// Handler observes a logger. OnMessage gets every composed line (with the
// trailing newline), OnException gets formatting failures instead of a line.
//
// OnMessage runs while the System lock is held: it must not log into a logger
// of the same System. Handlers are not owned by the Logger and must stay valid
// until they are removed or the Logger is closed.
type Handler interface {
	OnMessage(t LogType, msg string)
	OnException(t LogType, format, what string)
}

type handlerEntry struct {
	id      HandlerID
	handler Handler
}

// Logger is one node of a logger family. All its state is guarded by the
// lock of its System.
type Logger struct {
	system   *System
	self     ref // own arena slot
	parent   ref // parent arena slot, zero for a root
	name     string
	flags    Flags
	console  bool           // secondary console gate (SetConsole)
	prefixes []string       // appended after inherited prefixes
	files    []*FileOutput  // owned, closed with the logger
	handlers []handlerEntry // borrowed
	curType  LogType        // type used by Write (io.Writer)
	closed   bool
}

// System is the registry of a logger family. A single mutex serializes
// registration, reparenting, every configuration change and every emission of
// all loggers sharing the System.
type System struct {
	sync struct {
		mtx     sync.Mutex   // guards everything below except fallbck
		fbckMtx sync.RWMutex // guards access to fallback writer
	}
	slots     []slot
	free      []uint32
	loggers   []*Logger     // live loggers in registration order
	children  map[ref][]ref // reverse parent index
	console   OutType       // console output, os.Stdout by default
	colors    bool          // ANSI colors on console
	fallbck   OutType       // receives internal errors, os.Stderr by default
	clock     func() time.Time
	formatter Formatter
	lastHID   HandlerID
	msgbuf    *bytes.Buffer // reused while composing lines
}

// FileOutput is an append-only log file. It creates missing parent
// directories on open and flushes according to its FlushPolicy.
type FileOutput struct {
	path   string
	file   *os.File
	bufw   *bufio.Writer // only for FLUSH_BUFFERED
	policy FlushPolicy
	closed bool
}

// FileOption customizes a FileOutput attached with Logger.AddFile.
type FileOption func(*fileSettings)

type fileSettings struct {
	policy FlushPolicy
}
