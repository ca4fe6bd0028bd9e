package lispy

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/lispy/parser"
)

// Stage identifies the step of the read pipeline that failed
type Stage uint8

// Read stages
const (
	StageLex Stage = iota + 1
	StageParse
)

var stageNames = map[Stage]string{
	StageLex:   "lex",
	StageParse: "parse",
}

func (s Stage) String() string {
	if v, ok := stageNames[s]; ok {
		return v
	}
	return "unknown"
}

// ReadError wraps a *lexer.LexError or a *parser.ParseError along with the
// stage that produced it.
type ReadError struct {
	Stage Stage
	Err   error
}

func newReadError(stage Stage, err error) *ReadError {
	return &ReadError{Stage: stage, Err: err}
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read (%s): %v", e.Stage, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Cause makes ReadError compatible with errors.Cause.
func (e *ReadError) Cause() error {
	return e.Err
}

// IsIncomplete reports whether err was caused by input that ended before
// all lists were closed. More input may fix such errors.
func IsIncomplete(err error) bool {
	var re *ReadError
	if !errors.As(err, &re) || re.Stage != StageParse {
		return false
	}
	return errors.Is(err, parser.ErrUnexpectedEOF)
}
