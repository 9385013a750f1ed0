package core

import "errors"

var (
	ErrNoDriver        = errors.New("no peripheral driver")
	ErrZeroThreshold   = errors.New("rate threshold must be non-zero")
	ErrMidpointRange   = errors.New("midpoint outside sample range")
	ErrButtonConflict  = errors.New("buttons share an input pin")
	ErrZeroBaseCount   = errors.New("timer base count must be non-zero")
	ErrDebounceSamples = errors.New("debounce samples out of range")
)
