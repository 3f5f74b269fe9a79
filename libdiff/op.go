package libdiff

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/deltapad/textcore/ir"
)

// Op is one span of an edit script. Its length in code points is Count when
// Text is empty, otherwise the code point length of Text. Count may be left
// zero when Text is set.
type Op struct {
	Type  OpType `json:"type"`
	Text  string `json:"text,omitempty"`
	Count int    `json:"count,omitempty"`
}

func Keep(text string) Op   { return Op{Type: Unchanged, Text: text} }
func Remove(text string) Op { return Op{Type: Removed, Text: text} }
func Add(text string) Op    { return Op{Type: Added, Text: text} }

// Len is the span length of o in code points.
func (o Op) Len() int {
	if o.Text == "" {
		return o.Count
	}
	return utf8.RuneCountInString(o.Text)
}

func (o Op) String() string {
	if o.Text == "" {
		return o.Type.String() + "(" + strconv.Itoa(o.Count) + ")"
	}
	return o.Type.String() + "(" + strconv.Quote(o.Text) + ")"
}

func (o Op) validate(i int) error {
	switch o.Type {
	case Unchanged, Removed, Added:
	default:
		return fmt.Errorf("%w: op %d has unknown type %d", ir.ErrInvalidArgument, i, o.Type)
	}
	if o.Count < 0 {
		return fmt.Errorf("%w: op %d has negative length %d", ir.ErrInvalidArgument, i, o.Count)
	}
	if o.Text != "" && o.Count != 0 {
		if n := utf8.RuneCountInString(o.Text); n != o.Count {
			return fmt.Errorf("%w: op %d has count %d but text of length %d", ir.ErrInvalidArgument, i, o.Count, n)
		}
	}
	return nil
}

func validate(ops []Op) error {
	for i := range ops {
		if err := ops[i].validate(i); err != nil {
			return err
		}
	}
	return nil
}
