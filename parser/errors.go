package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/lispy/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingTokens  = errors.New("trailing tokens")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
	ErrOutOfRange      = errors.New("index out of range")
)

// ParseError is returned when a token sequence does not match the grammar.
type ParseError struct {
	Err error

	// Token is the offending token, nil when the stream ended early.
	Token *lexer.Token
	// Offset is the position of the offending token in the sequence.
	Offset int
	// Remaining is the number of tokens left unconsumed, including Token.
	Remaining int
	// Expected names what the parser was looking for, if known.
	Expected string
}

func newParseError(err error, ts Tokens) *ParseError {
	pe := &ParseError{
		Err:       err,
		Offset:    ts.Offset(),
		Remaining: ts.Len(),
	}
	if tok, ok := ts.First(); ok {
		pe.Token = &tok
	}
	return pe
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parser: %v", e.Err)
	if e.Token != nil {
		msg += fmt.Sprintf(" %v", e.Token)
	}
	if e.Expected != "" {
		msg += fmt.Sprintf(", expecting %s", e.Expected)
	}
	return msg + fmt.Sprintf(" at token %d", e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Cause makes ParseError compatible with errors.Cause.
func (e *ParseError) Cause() error {
	return e.Err
}
