package token

import (
	"errors"
	"testing"
)

func TestNumber(t *testing.T) {
	for _, tc := range []struct {
		in  string
		n   int
		err error
	}{
		{"0", 1, nil},
		{"-0", 2, nil},
		{"12", 2, nil},
		{"12,", 2, nil},
		{"-12.5e+3]", 8, nil},
		{"1E9", 3, nil},
		{"0.25", 4, nil},
		{"0x", 1, nil},
		{"01", 1, ErrNumberLeadingZero},
		{"-01", 2, ErrNumberLeadingZero},
		{"-", 1, ErrNumber},
		{"-a", 1, ErrNumber},
		{"1.", 2, ErrNumber},
		{"1.e3", 2, ErrNumber},
		{"1e", 2, ErrNumber},
		{"1e+", 3, ErrNumber},
		{".5", 0, ErrNumber},
	} {
		n, err := Number([]byte(tc.in))
		if !errors.Is(err, tc.err) {
			t.Errorf("Number(%q) error %v, want %v", tc.in, err, tc.err)
			continue
		}
		if n != tc.n {
			t.Errorf("Number(%q) = %d, want %d", tc.in, n, tc.n)
		}
	}
}

func TestNumberValue(t *testing.T) {
	v, err := NumberValue([]byte("-12.5e+3"))
	if err != nil {
		t.Fatal(err)
	}
	if v != -12500 {
		t.Errorf("got %v", v)
	}
	if _, err := NumberValue([]byte("1e400")); !errors.Is(err, ErrNumberRange) {
		t.Errorf("1e400: got %v, want %v", err, ErrNumberRange)
	}
}

func TestKeyword(t *testing.T) {
	for _, tc := range []struct {
		in  string
		n   int
		err error
	}{
		{"true", 4, nil},
		{"false]", 5, nil},
		{"null,", 4, nil},
		{"nul", 3, ErrUnexpectedEOF},
		{"trve", 2, ErrLiteral},
		{"x", 0, ErrLiteral},
	} {
		n, err := Keyword([]byte(tc.in))
		if !errors.Is(err, tc.err) {
			t.Errorf("Keyword(%q) error %v, want %v", tc.in, err, tc.err)
			continue
		}
		if n != tc.n {
			t.Errorf("Keyword(%q) = %d, want %d", tc.in, n, tc.n)
		}
	}
}
