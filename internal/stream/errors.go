package stream

import (
	"errors"
	"fmt"
)

// Errors returned by stream operations.
var (
	// ErrInvalidUTF8 indicates bytes that can never start a valid UTF-8 sequence.
	ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")

	// ErrIncompleteSequence indicates the stream was closed in the middle of a
	// multi-byte character.
	ErrIncompleteSequence = errors.New("incomplete utf-8 sequence at end of input")

	// ErrCancelled indicates the caller's context was done before the write.
	ErrCancelled = errors.New("stream operation cancelled")

	// ErrStreamClosed indicates a write after Close.
	ErrStreamClosed = errors.New("stream closed")

	// ErrUnknownEncoding indicates a charset name x/text does not know.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// DecodeError reports where in the byte stream decoding failed.
type DecodeError struct {
	// Offset is the position of the offending byte, counted from the first
	// byte written to the stream.
	Offset int64
	// Bytes holds up to MaxUnicharLen bytes starting at Offset.
	Bytes []byte
	// Err is ErrInvalidUTF8 or ErrIncompleteSequence.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at byte %d (% x)", e.Err, e.Offset, e.Bytes)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
