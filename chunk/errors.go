package chunk

import (
	"errors"
	"fmt"
)

var (
	// ErrNotADigit signals a byte outside '0'…'9'.
	ErrNotADigit = errors.New("chunk: not a decimal digit")
	// ErrChunkTooLarge signals that input exceeds MaxBase bytes.
	ErrChunkTooLarge = errors.New("chunk: text exceeds chunk capacity")
)

// NotADigitError reports the first non-digit byte found while building a chunk.
// Offset is chunk-local.
type NotADigitError struct {
	Offset int
	Char   byte
}

func (e *NotADigitError) Error() string {
	return fmt.Sprintf("chunk: byte %q at offset %d is not a decimal digit", e.Char, e.Offset)
}

// Unwrap lets NotADigitError match ErrNotADigit.
func (e *NotADigitError) Unwrap() error {
	return ErrNotADigit
}
