package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quoted scans the double quoted JSON string at the start of d. It returns
// the number of bytes consumed, closing quote included, and the decoded
// value. On error the returned length is the offset of the offending byte.
func Quoted(d []byte) (int, string, error) {
	if len(d) == 0 {
		return 0, "", ErrUnexpectedEOF
	}
	if d[0] != '"' {
		return 0, "", ErrUnexpected
	}
	var (
		b   *strings.Builder
		n   = len(d)
		i   = 1
		seg = 1
	)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			if b == nil {
				return i + 1, string(d[1:i]), nil
			}
			b.Write(d[seg:i])
			return i + 1, b.String(), nil
		case c == '\\':
			if b == nil {
				b = &strings.Builder{}
			}
			b.Write(d[seg:i])
			sz, err := unescape(b, d[i:])
			if err != nil {
				return i + sz, "", err
			}
			i += sz
			seg = i
		case c < 0x20:
			return i, "", ErrUnicodeControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return i, "", ErrBadUTF8
			}
			i += sz
		}
	}
	return n, "", ErrUnterminated
}

// unescape decodes the escape sequence at the start of d, d[0] being the
// backslash.
func unescape(b *strings.Builder, d []byte) (int, error) {
	if len(d) < 2 {
		return 1, ErrUnterminated
	}
	switch d[1] {
	case '"', '\\', '/':
		b.WriteByte(d[1])
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, k, err := hex4(d[2:])
		if err != nil {
			return 2 + k, err
		}
		if utf16.IsSurrogate(r) {
			if len(d) >= 12 && d[6] == '\\' && d[7] == 'u' {
				if r2, _, err := hex4(d[8:]); err == nil {
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						b.WriteRune(dec)
						return 12, nil
					}
				}
			}
			r = utf8.RuneError
		}
		b.WriteRune(r)
		return 6, nil
	default:
		return 1, ErrBadEscape
	}
	return 2, nil
}

func hex4(d []byte) (rune, int, error) {
	var r rune
	for k := 0; k < 4; k++ {
		if k >= len(d) {
			return 0, k, ErrUnterminated
		}
		c := d[k]
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		default:
			return 0, k, ErrBadUnicode
		}
		r = r<<4 | rune(v)
	}
	return r, 4, nil
}
