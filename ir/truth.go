package ir

func Truth(e *Entry) bool {
	switch e.Type {
	case StringType:
		return e.String != ""
	case NumberType:
		return e.Number != 0
	case BoolType:
		return e.Bool
	default:
		return false
	}
}
