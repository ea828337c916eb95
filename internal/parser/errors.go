package parser

import "errors"

// Line-level failures. The loader skips the line and keeps going on any of these.
var (
	ErrShortRow         = errors.New("row has fewer than 4 fields")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptySide        = errors.New("match has no winners or no losers")
	ErrUnresolvedResult = errors.New("result text does not name a winner")
)
