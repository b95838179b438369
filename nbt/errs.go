package nbt

import "errors"

var (
	// ErrMalformed reports a truncated or internally inconsistent tag
	// stream. It aborts decoding of the stream in progress only.
	ErrMalformed = errors.New("malformed tag")

	// ErrTooDeep reports container nesting past MaxDepth.
	ErrTooDeep = errors.New("tag nesting too deep")
)
