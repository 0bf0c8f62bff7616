package params

import "errors"

var (
	// ErrUnknownParameter reports a pattern that matched no stored names.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrUnknownKey reports a failed exact-name lookup.
	ErrUnknownKey = errors.New("unknown key")
	// ErrIndexOutOfRange reports a positional index outside the store.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrLengthMismatch reports a vector or value sequence whose length
	// does not line up with the targeted parameters.
	ErrLengthMismatch = errors.New("length mismatch")
)
