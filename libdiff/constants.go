package libdiff

import "fmt"

// OpType tags a diff operation.
type OpType int

const (
	Unchanged OpType = iota
	Removed
	Added
)

func (t OpType) String() string {
	switch t {
	case Unchanged:
		return "unchanged"
	case Removed:
		return "removed"
	case Added:
		return "added"
	}
	return "<unknown op>"
}

func (t OpType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *OpType) UnmarshalText(d []byte) error {
	tt, ok := map[string]OpType{
		"unchanged": Unchanged,
		"removed":   Removed,
		"added":     Added,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized op %q", d)
	}
	*t = tt
	return nil
}

// Kind classifies a change range.
type Kind int

const (
	Deletion Kind = iota
	Addition
)

func (k Kind) String() string {
	switch k {
	case Deletion:
		return "deletion"
	case Addition:
		return "addition"
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "deletion":
		*k = Deletion
	case "addition":
		*k = Addition
	default:
		return fmt.Errorf("unrecognized kind %q", d)
	}
	return nil
}
