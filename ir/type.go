package ir

import "fmt"

// Type is the kind of a scalar entry. Containers never produce entries.
type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil

}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
	}
}
