package token

import (
	"errors"
	"math"
	"strconv"
)

// Number returns the length of the JSON number at the start of d, or the
// offset of the first offending byte together with an error.
func Number(d []byte) (int, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i + 1, ErrNumberLeadingZero
	}
	i += digits
	f, err := fract(d[i:])
	if err != nil {
		return i + f, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return i + e, err
	}
	return i + e, nil
}

// NumberValue parses a literal accepted by Number.
func NumberValue(lit []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(lit), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrNumberRange
		}
		return 0, ErrNumber
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNumberRange
	}
	return v, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	// . must be followed by 1 or more digits rfc 8259
	n := asciiDigits(d[1:])
	if n == 0 {
		return 1, ErrNumber
	}
	return n + 1, nil
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return i, ErrNumber
	}
	return n + i, nil
}
