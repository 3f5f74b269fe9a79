package token

import (
	"errors"
	"testing"
)

func TestQuoted(t *testing.T) {
	for _, tc := range []struct {
		in   string
		n    int
		want string
	}{
		{`""`, 2, ""},
		{`"abc"`, 5, "abc"},
		{`"abc" , 1`, 5, "abc"},
		{`"a\"b"`, 6, `a"b`},
		{`"\\\/\b\f\n\r\t"`, 16, "\\/\b\f\n\r\t"},
		{`"\u0041\u00e9"`, 14, "A\u00e9"},
		{`"\ud83d\ude00"`, 14, "\U0001F600"},
		{`"\ud83dx"`, 9, "\uFFFDx"},
		{`"\ude00"`, 8, "\uFFFD"},
		{`"\u221e\u221e"`, 14, "\u221e\u221e"},
		{"\"\x7f\"", 3, "\x7f"},
	} {
		n, got, err := Quoted([]byte(tc.in))
		if err != nil {
			t.Errorf("Quoted(%q): unexpected error %v", tc.in, err)
			continue
		}
		if n != tc.n {
			t.Errorf("Quoted(%q) consumed %d, want %d", tc.in, n, tc.n)
		}
		if got != tc.want {
			t.Errorf("Quoted(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuotedErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		at  int
		err error
	}{
		{``, 0, ErrUnexpectedEOF},
		{`abc`, 0, ErrUnexpected},
		{`"abc`, 4, ErrUnterminated},
		{`"ab\`, 4, ErrUnterminated},
		{"\"a\nb\"", 2, ErrUnicodeControl},
		{"\"a\tb\"", 2, ErrUnicodeControl},
		{`"\x"`, 2, ErrBadEscape},
		{`"\u12G4"`, 5, ErrBadUnicode},
		{`"\u12"`, 5, ErrBadUnicode},
		{`"\u12`, 5, ErrUnterminated},
		{"\"\xff\"", 1, ErrBadUTF8},
	} {
		n, _, err := Quoted([]byte(tc.in))
		if !errors.Is(err, tc.err) {
			t.Errorf("Quoted(%q) error %v, want %v", tc.in, err, tc.err)
			continue
		}
		if n != tc.at {
			t.Errorf("Quoted(%q) error at %d, want %d", tc.in, n, tc.at)
		}
	}
}
