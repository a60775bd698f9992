package handlers

import (
	"io"
	"os"

	"github.com/abyssdigger/xlog"
)

// AbortHandler echoes critical messages to its output and terminates the
// process on any formatting failure: a broken log call is treated as a bug
// that must not go unnoticed.
type AbortHandler struct {
	out  io.Writer
	exit func(code int)
}

// NewAbortHandler writes to out (os.Stderr for nil) and exits with os.Exit(1).
func NewAbortHandler(out io.Writer) *AbortHandler {
	if out == nil {
		out = os.Stderr
	}
	return &AbortHandler{out: out, exit: os.Exit}
}

// WithExit replaces the exit function (for tests and embedding).
func (h *AbortHandler) WithExit(exit func(code int)) *AbortHandler {
	h.exit = exit
	return h
}

func (h *AbortHandler) OnMessage(t xlog.LogType, msg string) {
	if t == xlog.LOG_CRITICAL {
		io.WriteString(h.out, "Critical error! msg: "+msg)
	}
}

func (h *AbortHandler) OnException(t xlog.LogType, format, what string) {
	io.WriteString(h.out, "Exception: format: "+format+" what: "+what+"\n")
	h.exit(1)
}
