package token

import (
	"errors"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumber            = errors.New("number")
	ErrNumberRange       = errors.New("number out of range")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrEmptyDoc          = errors.New("empty document")
	ErrUnexpected        = errors.New("unexpected character")
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
	ErrTrailing          = errors.New("trailing data")
	ErrDepth             = errors.New("nesting too deep")
)
