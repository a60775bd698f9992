package xlog

import (
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
)

// Formatter renders a message template with its arguments. A failure must be
// reported as an error (preferably *FormatError) and must not produce text.
type Formatter interface {
	Format(template string, args ...any) (string, error)
}

// FormatError reports a malformed template or an argument mismatch.
type FormatError struct {
	Template string
	Reason   string
}

func (e *FormatError) Error() string {
	return _ERROR_MESSAGE_BAD_FORMAT_TEXT + " `" + e.Template + "`: " + e.Reason
}

// SprintfFormatter is the default Formatter. It renders with fmt.Sprintf and
// fails on the fmt error markers caused by the call itself: %!d(MISSING),
// %!(EXTRA ...), %!(BADINDEX), %!(NOVERB), a verb the argument's type does
// not support (%!d(string=x)) or a panicking String/Error method. Argument
// text that merely contains such markers is logged as is.
//
// The template is always rendered, so a literal percent sign has to be
// written as %% even without arguments.
type SprintfFormatter struct{}

var (
	// fmt error markers always start with "%!" and an optional verb before "(".
	fmtErrorMarker = regexp.MustCompile(`%!.?\([^)]*\)?`)
	// marker of a verb applied to an operand that does not support it
	badVerbMarker = regexp.MustCompile(`%!(.)\((?:PANIC=|<nil>\)|[^\s()=]+=)`)
)

func (SprintfFormatter) Format(template string, args ...any) (string, error) {
	// Check pass: every operand that may carry text is replaced by a neutral
	// token, so markers left in the output come from the template.
	operands := make([]any, len(args))
	var checked []*checkedArg
	for i, a := range args {
		if plainInteger(a) {
			operands[i] = a // may be a * width or precision
			continue
		}
		c := &checkedArg{arg: a}
		operands[i] = c
		checked = append(checked, c)
	}
	text := fmt.Sprintf(template, args...)
	if marker := fmtErrorMarker.FindString(fmt.Sprintf(template, operands...)); marker != "" {
		return "", &FormatError{Template: template, Reason: sameMarker(text, marker)}
	}
	for _, c := range checked {
		if c.bad != "" {
			return "", &FormatError{Template: template, Reason: c.bad}
		}
	}
	// %p is handled by fmt before the operand's Format method is consulted
	for _, m := range badVerbMarker.FindAllStringSubmatchIndex(text, -1) {
		if text[m[2]:m[3]] == "p" && strings.Contains(template, "p") {
			return "", &FormatError{Template: template, Reason: fmtErrorMarker.FindString(text[m[0]:])}
		}
	}
	return text, nil
}

// sameMarker returns the marker of the rendered text that has the kind of
// marker ("%!(EXTRA", "%!d(MISSING"...), so the reason shows the real operand
// types. marker itself is returned if there is none.
func sameMarker(text, marker string) string {
	kind := marker
	if i := strings.IndexAny(marker, " =)"); i > 0 {
		kind = marker[:i]
	}
	if i := strings.Index(text, kind); i >= 0 {
		if m := fmtErrorMarker.FindString(text[i:]); m != "" {
			return m
		}
	}
	return marker
}

// checkedArg renders its operand on its own, remembers a bad verb marker the
// operand produced and writes a neutral token in its place.
type checkedArg struct {
	arg any
	bad string
}

func (c *checkedArg) Format(f fmt.State, verb rune) {
	text := fmt.Sprintf(fmt.FormatString(f, verb), c.arg)
	if c.bad == "" {
		for _, m := range badVerbMarker.FindAllStringSubmatchIndex(text, -1) {
			if text[m[2]:m[3]] == string(verb) {
				c.bad = fmtErrorMarker.FindString(text[m[0]:])
				break
			}
		}
	}
	io.WriteString(f, "_")
}

// plainInteger reports whether a is an integer that renders without any
// method of its own.
func plainInteger(a any) bool {
	switch a.(type) {
	case fmt.Formatter, fmt.Stringer, fmt.GoStringer, error:
		return false
	}
	switch reflect.ValueOf(a).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
