package domain

import "errors"

var (
	ErrExhaustedPool = errors.New("no numbers left to draw")
	ErrInvalidState  = errors.New("operation not allowed in current draw state")
	ErrInvalidDraw   = errors.New("number is not in the pool")
	ErrOutOfRange    = errors.New("number must be between 1 and 75")
)
