package xlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type badStringer struct{}

func (badStringer) String() string { panic("stringer") }

func Test_SprintfFormatter(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		args    []any
		wants   string
		wantErr bool
	}{
		{"no_args", "plain text", nil, "plain text", false},
		{"args", "%s has %d items", []any{"cart", 3}, "cart has 3 items", false},
		{"percent", "100%%", nil, "100%", false},
		{"unicode", testlogstr, nil, testlogstr, false},
		{"missing", "%s and %s", []any{"one"}, "", true},
		{"extra", "no verbs", []any{1}, "", true},
		{"wrong_type", "%d", []any{"str"}, "", true},
		{"no_verb", "trailing %", nil, "", true},
		{"bad_index", "%[3]d", []any{1}, "", true},
		{"bad_width", "%*d", []any{"w", 1}, "", true},
		{"panic_in_stringer", "%v", []any{badStringer{}}, "", true},
		{"marker_in_arg", "user said: %s", []any{"wow 100%!(really)"}, "user said: wow 100%!(really)", false},
		{"verb_markers_in_args", "%s|%v", []any{"%!d(string=x)", errors.New("%!(EXTRA int=1)")}, "%!d(string=x)|%!(EXTRA int=1)", false},
		{"star_width", "[%*d]", []any{4, 7}, "[   7]", false},
		{"type_verb", "%T", []any{"s"}, "string", false},
		{"nil_value", "%v", []any{nil}, "<nil>", false},
		{"nil_wrong_verb", "%d", []any{nil}, "", true},
		{"wrong_type_nested", "%d", []any{[]string{"a"}}, "", true},
		{"pointer_verb", "%p", []any{"s"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SprintfFormatter{}.Format(tt.format, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				var ferr *FormatError
				if assert.True(t, errors.As(err, &ferr)) {
					assert.Equal(t, tt.format, ferr.Template)
					assert.Contains(t, ferr.Reason, "%!")
					assert.Contains(t, err.Error(), _ERROR_MESSAGE_BAD_FORMAT_TEXT)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wants, got)
			}
		})
	}
}

func Test_SprintfFormatter_Reason(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		reason string
	}{
		{"extra", "none", []any{"x", 2}, "%!(EXTRA string=x, int=2)"},
		{"missing", "%s %d", []any{"%!d(MISSING)"}, "%!d(MISSING)"},
		{"wrong_type", "%s %d", []any{"a", "b"}, "%!d(string=b)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SprintfFormatter{}.Format(tt.format, tt.args...)
			var ferr *FormatError
			if assert.True(t, errors.As(err, &ferr)) {
				assert.Equal(t, tt.reason, ferr.Reason)
			}
		})
	}
}
