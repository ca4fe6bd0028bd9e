package parser

import (
	"github.com/pkg/errors"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

// recognizer tries to match a grammar rule at the start of ts. On success
// it returns the expression and the tokens that follow it. On failure ts is
// left for the caller to try something else.
type recognizer func(ts Tokens) (ast.Expr, Tokens, error)

// tokenMatcher consumes a single token of a known type.
type tokenMatcher func(ts Tokens) (matched Tokens, rest Tokens, err error)

var (
	tagOpenList  = tagToken(lexer.TokenOpenList)
	tagCloseList = tagToken(lexer.TokenCloseList)
	tagInteger   = tagToken(lexer.TokenInteger)
	tagSymbol    = tagToken(lexer.TokenSymbol)
)

func tagToken(tt lexer.TokenType) tokenMatcher {
	return func(ts Tokens) (Tokens, Tokens, error) {
		tok, ok := ts.First()
		if !ok {
			return Tokens{}, ts, expecting(newParseError(ErrUnexpectedEOF, ts), tt.String())
		}
		if !tok.Is(tt) {
			return Tokens{}, ts, expecting(newParseError(ErrUnexpectedToken, ts), tt.String())
		}
		return ts.TakePrefix(1)
	}
}

func expecting(pe *ParseError, what string) *ParseError {
	pe.Expected = what
	return pe
}

// isSoftError tells whether err means "this rule does not start here", in
// which case another alternative may be tried. Errors raised after some
// tokens were consumed, and depth errors, are final.
func isSoftError(err error, ts Tokens) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	if pe.Offset != ts.Offset() {
		return false
	}
	return errors.Is(pe.Err, ErrUnexpectedToken) || errors.Is(pe.Err, ErrUnexpectedEOF)
}

// alt tries each recognizer in order and returns the first success.
func alt(what string, rs ...recognizer) recognizer {
	return func(ts Tokens) (ast.Expr, Tokens, error) {
		for _, r := range rs {
			expr, rest, err := r(ts)
			if err == nil {
				return expr, rest, nil
			}
			if !isSoftError(err, ts) {
				return nil, ts, err
			}
		}
		if ts.Len() == 0 {
			return nil, ts, expecting(newParseError(ErrUnexpectedEOF, ts), what)
		}
		return nil, ts, expecting(newParseError(ErrUnexpectedToken, ts), what)
	}
}

// many0 applies r greedily until it stops matching.
func many0(r recognizer) func(ts Tokens) ([]ast.Expr, Tokens, error) {
	return func(ts Tokens) ([]ast.Expr, Tokens, error) {
		exprs := []ast.Expr{}
		for {
			expr, rest, err := r(ts)
			if err != nil {
				if isSoftError(err, ts) {
					return exprs, ts, nil
				}
				return nil, ts, err
			}
			exprs = append(exprs, expr)
			ts = rest
		}
	}
}

func recognizeInteger(ts Tokens) (ast.Expr, Tokens, error) {
	matched, rest, err := tagInteger(ts)
	if err != nil {
		return nil, ts, err
	}
	tok, _ := matched.First()
	return ast.Integer(tok.Int()), rest, nil
}

func recognizeSymbol(ts Tokens) (ast.Expr, Tokens, error) {
	matched, rest, err := tagSymbol(ts)
	if err != nil {
		return nil, ts, err
	}
	tok, _ := matched.First()
	return ast.Symbol(tok.Text()), rest, nil
}

// grammar holds the rules of the language:
//
//	expr := integer | symbol | list
//	list := "(" expr* ")"
type grammar struct {
	maxDepth int
}

func (g grammar) expr(depth int) recognizer {
	return alt("expression",
		recognizeInteger,
		recognizeSymbol,
		g.list(depth),
	)
}

func (g grammar) list(depth int) recognizer {
	return func(ts Tokens) (ast.Expr, Tokens, error) {
		_, rest, err := tagOpenList(ts)
		if err != nil {
			return nil, ts, err
		}
		if depth >= g.maxDepth {
			return nil, ts, newParseError(ErrMaxDepth, ts)
		}

		children, rest, err := many0(g.expr(depth + 1))(rest)
		if err != nil {
			return nil, ts, err
		}

		_, rest, err = tagCloseList(rest)
		if err != nil {
			return nil, ts, err
		}

		return ast.NewList(children...), rest, nil
	}
}
