package parser

import (
	"github.com/xiam/lispy/lexer"
)

// Tokens is a read-only view over a region of a token sequence. Tokens
// values are cheap to copy and none of their methods modify the receiver,
// so many views can share the same backing sequence.
type Tokens struct {
	tokens []lexer.Token

	start int
	end   int
}

// NewTokens creates a view over the whole sequence.
func NewTokens(tokens []lexer.Token) Tokens {
	return Tokens{
		tokens: tokens,
		start:  0,
		end:    len(tokens),
	}
}

// Len returns the number of tokens remaining in the view.
func (ts Tokens) Len() int {
	return ts.end - ts.start
}

// Offset returns the position of the first token of the view within the
// backing sequence.
func (ts Tokens) Offset() int {
	return ts.start
}

// TakePrefix splits the view at n, returning the first n tokens and the
// rest.
func (ts Tokens) TakePrefix(n int) (prefix Tokens, rest Tokens, err error) {
	if n < 0 || n > ts.Len() {
		return Tokens{}, Tokens{}, ErrOutOfRange
	}
	prefix = Tokens{tokens: ts.tokens, start: ts.start, end: ts.start + n}
	rest = Tokens{tokens: ts.tokens, start: ts.start + n, end: ts.end}
	return prefix, rest, nil
}

// Slice returns the sub-view [from, to) relative to the current view.
func (ts Tokens) Slice(from, to int) (Tokens, error) {
	if from < 0 || to < from || to > ts.Len() {
		return Tokens{}, ErrOutOfRange
	}
	return Tokens{tokens: ts.tokens, start: ts.start + from, end: ts.start + to}, nil
}

// At returns the i-th token of the view.
func (ts Tokens) At(i int) (lexer.Token, bool) {
	if i < 0 || i >= ts.Len() {
		return lexer.Token{}, false
	}
	return ts.tokens[ts.start+i], true
}

// First returns the first token of the view.
func (ts Tokens) First() (lexer.Token, bool) {
	return ts.At(0)
}

// Each calls fn for every token in the view, in order, until fn returns
// false.
func (ts Tokens) Each(fn func(i int, tok lexer.Token) bool) {
	for i := ts.start; i < ts.end; i++ {
		if !fn(i-ts.start, ts.tokens[i]) {
			return
		}
	}
}

// Position returns the index of the first token that satisfies pred.
func (ts Tokens) Position(pred func(tok lexer.Token) bool) (int, bool) {
	pos := -1
	ts.Each(func(i int, tok lexer.Token) bool {
		if pred(tok) {
			pos = i
			return false
		}
		return true
	})
	return pos, pos >= 0
}

// Tokens returns a copy of the tokens in the view.
func (ts Tokens) Tokens() []lexer.Token {
	out := make([]lexer.Token, ts.Len())
	copy(out, ts.tokens[ts.start:ts.end])
	return out
}

func (ts Tokens) String() string {
	s := "["
	ts.Each(func(i int, tok lexer.Token) bool {
		if i > 0 {
			s += " "
		}
		s += tok.Text()
		return true
	})
	return s + "]"
}
