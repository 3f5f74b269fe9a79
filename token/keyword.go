package token

var (
	kwTrue  = []byte("true")
	kwFalse = []byte("false")
	kwNull  = []byte("null")
)

// Keyword returns the length of the true, false or null literal at the
// start of d. Only the literal itself is consumed; what follows is left to
// the caller.
func Keyword(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, ErrUnexpectedEOF
	}
	var kw []byte
	switch d[0] {
	case 't':
		kw = kwTrue
	case 'f':
		kw = kwFalse
	case 'n':
		kw = kwNull
	default:
		return 0, ErrLiteral
	}
	for i := range kw {
		if i >= len(d) {
			return i, ErrUnexpectedEOF
		}
		if d[i] != kw[i] {
			return i, ErrLiteral
		}
	}
	return len(kw), nil
}

func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// SkipSpace returns the number of JSON whitespace bytes at the start of d.
func SkipSpace(d []byte) int {
	i := 0
	for i < len(d) && IsSpace(d[i]) {
		i++
	}
	return i
}
