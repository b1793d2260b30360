package parse

import "errors"

var (
	errInternal = errors.New("internal parse error")

	ErrParse = errors.New("parse error")
)
