package analysis

import "errors"

var (
	ErrUnknownIndicator   = errors.New("unknown indicator")
	ErrUnknownPolarity    = errors.New("unknown signal type")
	ErrUnknownColumn      = errors.New("signal column not found")
	ErrInsufficientSample = errors.New("insufficient sample size")
	ErrInvalidBucket      = errors.New("unknown strategy bucket")
)
