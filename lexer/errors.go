package lexer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrIntegerRange   = errors.New("integer out of range")
)

// maxRemainder bounds how much of the unconsumed input is quoted in error
// messages. The full remainder is still available on the error value.
const maxRemainder = 32

// LexError is returned when the input can't be tokenized in full.
type LexError struct {
	// Offset is the byte offset where scanning stopped.
	Offset int
	// Remainder is the input that was left unconsumed.
	Remainder string

	Err error
}

func (e *LexError) Error() string {
	rem := e.Remainder
	if len(rem) > maxRemainder {
		rem = rem[:maxRemainder] + "..."
	}
	return fmt.Sprintf("lexer: %v at offset %d near %q", e.Err, e.Offset, rem)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// Cause makes LexError compatible with errors.Cause.
func (e *LexError) Cause() error {
	return e.Err
}
