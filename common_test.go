package xlog

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testlogstr = "Test log АБВ こんにちは, 世界`'é\"\\\x5A и други глупости!"
const panicStr = "panic generated in handler"
const errorStr = "error generated in writer"

// Fixed timestamp of testSystem loggers and its rendering.
var testTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

const testDate = "[2024-01-02 03:04:05]"

type ErrorWriter struct{}

func (e *ErrorWriter) Write(b []byte) (int, error) { return 0, errors.New(errorStr) }

// FakeWriter collects everything written to it; safe for concurrent use.
type FakeWriter struct {
	mtx    sync.Mutex
	buffer []byte
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.buffer = append(f.buffer, b...)
	return len(b), nil
}
func (f *FakeWriter) String() string {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return string(f.buffer)
}
func (f *FakeWriter) Clear() {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.buffer = f.buffer[:0]
}

type message struct {
	t   LogType
	msg string
}

type exception struct {
	t      LogType
	format string
	what   string
}

// RecordHandler remembers every callback.
type RecordHandler struct {
	mtx        sync.Mutex
	messages   []message
	exceptions []exception
}

func (h *RecordHandler) OnMessage(t LogType, msg string) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.messages = append(h.messages, message{t, msg})
}

func (h *RecordHandler) OnException(t LogType, format, what string) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.exceptions = append(h.exceptions, exception{t, format, what})
}

func (h *RecordHandler) Messages() []message {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return append([]message(nil), h.messages...)
}

func (h *RecordHandler) Exceptions() []exception {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return append([]exception(nil), h.exceptions...)
}

type PanicHandler struct{}

func (PanicHandler) OnMessage(t LogType, msg string)            { panic(panicStr) }
func (PanicHandler) OnException(t LogType, format, what string) { panic(errors.New(panicStr)) }

// testSystem returns a System with a fixed clock, no colors and fake
// console/fallback outputs.
func testSystem() (s *System, console, ferr *FakeWriter) {
	console, ferr = &FakeWriter{}, &FakeWriter{}
	s = NewSystem().
		SetConsoleOutput(console).
		SetFallback(ferr).
		SetConsoleColors(false).
		SetClock(func() time.Time { return testTime })
	return s, console, ferr
}

func Test_normType(t *testing.T) {
	t.Run("for_255", func(t *testing.T) {
		for i := range 256 {
			want := LogType(i)
			if want >= _LOG_MAX_for_checks_only {
				want = LOG_INFO
			}
			assert.Equal(t, want, normType(LogType(i)), fmt.Sprintf("Fail on %d", i))
		}
	})
}

func Test_normPolicy(t *testing.T) {
	for i := range 256 {
		want := FlushPolicy(i)
		if want >= _FLUSH_MAX_for_checks_only {
			want = FLUSH_EACH_WRITE
		}
		assert.Equal(t, want, normPolicy(FlushPolicy(i)), fmt.Sprintf("Fail on %d", i))
	}
}

func Test_normFlags(t *testing.T) {
	assert.Equal(t, FLAG_INHERIT_ALL, normFlags(FLAG_INHERIT_ALL))
	assert.Equal(t, FLAG_IGNORE_CONSOLE, normFlags(FLAG_IGNORE_CONSOLE|1<<10))
	assert.Equal(t, FLAG_NONE, normFlags(1<<5|1<<20))
	assert.Equal(t, Flags(7), FLAG_INHERIT_ALL)
}

func Test_LogType_String(t *testing.T) {
	assert.Equal(t, "info", LOG_INFO.String())
	assert.Equal(t, "warn", LOG_WARN.String())
	assert.Equal(t, "critical", LOG_CRITICAL.String())
	assert.Equal(t, "info", LogType(200).String())
}

func Test_panicDesc(t *testing.T) {
	tests := []struct {
		name  string
		panic any
		wants string
	}{
		{"string", "boom", ": `boom`"},
		{"error", errors.New("boom"), ": (error) `boom`"},
		{"runtime_error", &runtime.PanicNilError{}, ": (error) `" + (&runtime.PanicNilError{}).Error() + "`"},
		{"int", 0, " " + _ERROR_UNKNOWN_PANIC_TEXT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wants, panicDesc(tt.panic))
		})
	}
}

func Test_TypeMaps(t *testing.T) {
	for i := range _LOG_MAX_for_checks_only {
		tag := TypeTags[i]
		assert.True(t, strings.HasPrefix(tag, "[") && strings.HasSuffix(tag, "]"), tag)
	}
	assert.Empty(t, TypeColors[LOG_INFO], "info has no color")
	assert.NotEmpty(t, TypeColors[LOG_WARN])
	assert.NotEmpty(t, TypeColors[LOG_CRITICAL])
}
