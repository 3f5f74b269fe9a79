package parse

import (
	"errors"
	"fmt"

	"github.com/deltapad/textcore/token"
)

var (
	ErrParse = errors.New("parse error")
)

// Error reports why a document is not valid JSON. Line and Col are 1-based,
// Col counting bytes.
type Error struct {
	Offset int
	Line   int
	Col    int
	Err    error
}

func newError(d []byte, off int, err error) *Error {
	pos := token.NewPosDoc(d).Pos(off)
	l, c := pos.LineCol()
	return &Error{
		Offset: off,
		Line:   l + 1,
		Col:    c + 1,
		Err:    err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v at offset %d (line=%d, col=%d)", ErrParse, e.Err, e.Offset, e.Line, e.Col)
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
