package ir

import (
	"errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
