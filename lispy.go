// Package lispy reads S-expressions into expression trees.
//
// Input is tokenized in full before parsing starts. The grammar is:
//
//	expr := integer | symbol | list
//	list := "(" expr* ")"
//
// Integers are signed decimal numbers that fit in 64 bits and symbols are
// runs of letters, digits and underscores.
package lispy

import (
	"io"

	"github.com/pkg/errors"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
	"github.com/xiam/lispy/parser"
)

// Read parses the only expression in text. Tokens following the first
// expression are an error.
func Read(text string) (ast.Expr, error) {
	return NewReader(nil).read([]byte(text))
}

// ReadAll parses every expression in text.
func ReadAll(text string) ([]ast.Expr, error) {
	return NewReader(nil).readAll([]byte(text))
}

// MustRead is like Read but panics on error.
func MustRead(text string) ast.Expr {
	expr, err := Read(text)
	if err != nil {
		panic(err.Error())
	}
	return expr
}

// Reader reads expressions from an io.Reader. The whole input is read
// before tokenizing.
type Reader struct {
	r io.Reader
	p *parser.Parser
}

// NewReader creates a Reader with default parser options
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, p: parser.New()}
}

// SetOptions replaces the parser options of the reader
func (r *Reader) SetOptions(opts parser.Options) *Reader {
	r.p.SetOptions(opts)
	return r
}

// Read parses a single expression.
func (r *Reader) Read() (ast.Expr, error) {
	in, err := r.slurp()
	if err != nil {
		return nil, err
	}
	return r.read(in)
}

// ReadAll parses all expressions.
func (r *Reader) ReadAll() ([]ast.Expr, error) {
	in, err := r.slurp()
	if err != nil {
		return nil, err
	}
	return r.readAll(in)
}

func (r *Reader) slurp() ([]byte, error) {
	if r.r == nil {
		return nil, errors.New("reader: no input")
	}
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, errors.Wrap(err, "reader")
	}
	return in, nil
}

func (r *Reader) read(in []byte) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, newReadError(StageLex, err)
	}
	expr, err := r.p.ParseTokens(parser.NewTokens(tokens))
	if err != nil {
		return nil, newReadError(StageParse, err)
	}
	return expr, nil
}

func (r *Reader) readAll(in []byte) ([]ast.Expr, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, newReadError(StageLex, err)
	}
	exprs, err := r.p.ParseAllTokens(parser.NewTokens(tokens))
	if err != nil {
		return nil, newReadError(StageParse, err)
	}
	return exprs, nil
}
