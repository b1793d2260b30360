package token

import "errors"

var (
	errInternal = errors.New("internal token error")

	ErrToken = errors.New("token error")
)
