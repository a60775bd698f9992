package xlog

/*
Package-wide constants, enums and helper utilities:
  - behavior flags and log types
  - default sizes and formats
  - ANSI/color related constants and per-type tag maps
  - error message texts
  - normalization helpers
*/

const (
	FLAG_NONE Flags = 0

	FLAG_INHERIT_PREFIXES Flags = 1 << 0 // prepend ancestors' prefixes
	FLAG_INHERIT_FILES    Flags = 1 << 1 // also write to ancestors' files
	FLAG_INHERIT_HANDLERS Flags = 1 << 2 // also notify ancestors' handlers

	FLAG_INHERIT_ALL = FLAG_INHERIT_PREFIXES | FLAG_INHERIT_FILES | FLAG_INHERIT_HANDLERS

	FLAG_IGNORE_CONSOLE        Flags = 1 << 3 // no console output
	FLAG_DISABLE_TYPE_PREFIXES Flags = 1 << 4 // no [info]/[warn]/[critical] tag

	_FLAG_MASK_for_checks_only = FLAG_INHERIT_ALL | FLAG_IGNORE_CONSOLE | FLAG_DISABLE_TYPE_PREFIXES
)

const (
	LOG_INFO LogType = iota
	LOG_WARN
	LOG_CRITICAL
	_LOG_MAX_for_checks_only
)

const (
	// Flush policies of a FileOutput.
	FLUSH_EACH_WRITE FlushPolicy = iota // every write lands in the file immediately (default)
	FLUSH_SYNC                          // as FLUSH_EACH_WRITE plus fsync after every write
	FLUSH_BUFFERED                      // buffered, data lands on Flush or Close
	_FLUSH_MAX_for_checks_only
)

const (
	DEFAULT_TIME_FORMAT = "[2006-01-02 15:04:05]"
	DEFAULT_OUT_BUFF    = 256  // initial buffer size for composed lines
	DEFAULT_FILE_BUFF   = 4096 // buffer size for FLUSH_BUFFERED files
	DEFAULT_DIR_MODE    = 0755
	DEFAULT_FILE_MODE   = 0644
)

const (
	// ANSI colored text fragments prefix/suffix used when colors are requested.
	// For a colored piece of text the sequence will be:
	// ANSI_COL_PRFX + colorSpec + ANSI_COL_SUFX + text + ANSI_COL_RESET
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

const (
	// Error messages used across logger operations (used for testing).
	_ERROR_MESSAGE_LOGGER_CLOSED   = "logger is closed"
	_ERROR_MESSAGE_LOGGER_IS_NIL   = "logger is nil"
	_ERROR_MESSAGE_FILE_CLOSED     = "log file is closed"
	_ERROR_MESSAGE_ALIEN_LOGGER    = "logger belongs to another system"
	_ERROR_MESSAGE_LOST_EXCEPTION  = "no handler for format exception"
	_ERROR_MESSAGE_HANDLER_PANIC   = "panic in log handler"
	_ERROR_MESSAGE_WRITE_FILE      = "error writing log file"
	_ERROR_UNKNOWN_PANIC_TEXT      = "[no panic description]"
	_ERROR_MESSAGE_BAD_FORMAT_TEXT = "bad format"
)

// TypeMap is a fixed-size array with one entry per log type. Used for type
// tags and colors.
type TypeMap [_LOG_MAX_for_checks_only]string

// Tags written before prefixes unless FLAG_DISABLE_TYPE_PREFIXES is set.
var TypeTags = &TypeMap{
	"[info]",     //LOG_INFO
	"[warn]",     //LOG_WARN
	"[critical]", //LOG_CRITICAL
}

// ANSI color codes of the tags on console (empty means no color).
var TypeColors = &TypeMap{
	"",               //LOG_INFO
	"38;2;255;165;0", //LOG_WARN (orange)
	"38;2;255;0;0",   //LOG_CRITICAL (red)
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided LogType is within the valid range (unknown types are
// treated as LOG_INFO)
func normType(t LogType) LogType {
	return norm_byte(t, _LOG_MAX_for_checks_only, LOG_INFO)
}

// Ensures a provided FlushPolicy is within the valid range
func normPolicy(p FlushPolicy) FlushPolicy {
	return norm_byte(p, _FLUSH_MAX_for_checks_only, FLUSH_EACH_WRITE)
}

// Drops unknown flag bits
func normFlags(f Flags) Flags {
	return f & _FLAG_MASK_for_checks_only
}

// String returns the type name without brackets ("info", "warn", "critical").
func (t LogType) String() string {
	tag := TypeTags[normType(t)]
	return tag[1 : len(tag)-1]
}

// Converts a panic value into a compact readable string (used when
// translating panics into errors or fallback messages)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
