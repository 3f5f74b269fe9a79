package ir

import (
	"encoding/json"
	"strconv"
)

// Entry is one scalar of a JSON document with its path and the half open
// byte range [Start, End) of its literal in the source, quotes included.
type Entry struct {
	Path   string
	Type   Type
	String string
	Number float64
	Bool   bool
	Start  int
	End    int
}

// Value returns the decoded value: a string, float64, bool or nil.
func (e *Entry) Value() any {
	switch e.Type {
	case StringType:
		return e.String
	case NumberType:
		return e.Number
	case BoolType:
		return e.Bool
	default:
		return nil
	}
}

// Literal returns the source token of e. src must be the text e was parsed
// from.
func (e *Entry) Literal(src []byte) []byte {
	return src[e.Start:e.End]
}

// ValueString formats the value the way it would be written in JSON.
func (e *Entry) ValueString() string {
	switch e.Type {
	case StringType:
		d, err := json.Marshal(e.String)
		if err != nil {
			return strconv.Quote(e.String)
		}
		return string(d)
	case NumberType:
		return strconv.FormatFloat(e.Number, 'g', -1, 64)
	case BoolType:
		return strconv.FormatBool(e.Bool)
	default:
		return "null"
	}
}

type jsonEntry struct {
	Path  string `json:"path"`
	Type  Type   `json:"type"`
	Value any    `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonEntry{
		Path:  e.Path,
		Type:  e.Type,
		Value: e.Value(),
		Start: e.Start,
		End:   e.End,
	})
}
